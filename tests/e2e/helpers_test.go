//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/rbradwell/language-learning/internal/adapter/postgres"
	exerciserepo "github.com/rbradwell/language-learning/internal/adapter/postgres/exercise"
	progressrepo "github.com/rbradwell/language-learning/internal/adapter/postgres/progress"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/sentence"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/session"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/testhelper"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/trail"
	"github.com/rbradwell/language-learning/internal/adapter/postgres/vocabulary"
	"github.com/rbradwell/language-learning/internal/auth"
	"github.com/rbradwell/language-learning/internal/config"
	"github.com/rbradwell/language-learning/internal/service/exercise"
	"github.com/rbradwell/language-learning/internal/service/progress"
	"github.com/rbradwell/language-learning/internal/transport/middleware"
	"github.com/rbradwell/language-learning/internal/transport/rest"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer wires the full exercise API against the shared
// testcontainers PostgreSQL.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	exercises := exerciserepo.New(pool)
	trails := trail.New(pool)
	sessions := session.New(pool)

	progressSvc := progress.NewService(logger, exercises, trails, sessions, progressrepo.New(pool))
	exerciseSvc := exercise.NewService(
		logger, exercises, trails, vocabulary.New(pool), sentence.New(pool), sessions,
		progressSvc, postgres.NewTxManager(pool),
		config.ExerciseConfig{SessionTTL: 30 * time.Minute, DistractorCount: 3},
	)

	jwtMgr := auth.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	api := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		}),
		middleware.Auth(jwtMgr, logger),
		middleware.Logger(logger),
	)

	handler := rest.NewExerciseHandler(exerciseSvc, progressSvc, logger)
	health := rest.NewHealthHandler(pool, "test-version")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("POST /exercises/start-exercise", api(http.HandlerFunc(handler.StartExercise)))
	mux.Handle("POST /exercises/submit-answer", api(http.HandlerFunc(handler.SubmitAnswer)))
	mux.Handle("GET /exercises/trail-steps-progress", api(http.HandlerFunc(handler.TrailStepsProgress)))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, jwt: jwtMgr}
}

func (ts *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return token
}

// do sends a JSON request and decodes the JSON response body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}
