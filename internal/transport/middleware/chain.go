package middleware

import (
	"encoding/json"
	"net/http"
	"slices"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that the first one listed runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			final = mw(final)
		}
		return final
	}
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeError answers with the same envelope the exercise handlers use.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Message: message}) //nolint:errcheck
}
