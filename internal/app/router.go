package app

import (
	"net/http"

	"github.com/rbradwell/language-learning/internal/transport/middleware"
	"github.com/rbradwell/language-learning/internal/transport/rest"
)

// newRouter mounts the probes without middleware and the exercise API
// behind the api chain.
func newRouter(health *rest.HealthHandler, exercises *rest.ExerciseHandler, api middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	routes := http.NewServeMux()
	routes.HandleFunc("POST /exercises/start-exercise", exercises.StartExercise)
	routes.HandleFunc("POST /exercises/submit-answer", exercises.SubmitAnswer)
	routes.HandleFunc("GET /exercises/trail-steps-progress", exercises.TrailStepsProgress)
	mux.Handle("/exercises/", api(routes))

	return mux
}
