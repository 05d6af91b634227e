package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logging returns middleware that logs every request with method, path,
// status, authenticated user, and duration.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start).Milliseconds()
		username := GetUsername(r.Context()) // empty if pre-auth

		status := ww.Status()
		switch {
		case status >= 500:
			slog.Error("request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"user", username,
				"duration_ms", duration,
			)
		case status >= 400:
			slog.Warn("request rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"user", username,
				"duration_ms", duration,
			)
		default:
			slog.Info("request ok",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"user", username,
				"duration_ms", duration,
			)
		}
	})
}
