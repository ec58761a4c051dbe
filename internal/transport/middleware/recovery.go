package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/rbradwell/language-learning/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 response and an error log entry
// with the stack trace.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				attrs := append([]slog.Attr{
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}, ctxutil.LogAttrs(r.Context())...)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
