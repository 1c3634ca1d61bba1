package http

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/http/handlers"
)

// Middleware defines the standard signature for an HTTP middleware.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middlewares into a single handler.
// The middlewares are applied in the order they are passed.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogMiddleware logs every request once it has been served.
func requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		fields := []any{"method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start).String()}
		if rec.status >= http.StatusInternalServerError {
			log.Error("request failed", fields...)
			return
		}
		log.Info("request served", fields...)
	})
}

// paramsMiddleware handles the 'verbose' and 'dry_run' query parameters.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("verbose") == "true" {
			originalLevel := log.GetLevel()
			log.SetLevel(log.DebugLevel)
			// The level is global, so concurrent requests are verbose too until this one finishes.
			defer log.SetLevel(originalLevel)
		}

		dryRun := query.Get("dry_run") == "true"
		if dryRun {
			log.Debug("dry run requested", "path", r.URL.Path)
		}
		ctx := context.WithValue(r.Context(), handlers.DryRunKey, dryRun)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
