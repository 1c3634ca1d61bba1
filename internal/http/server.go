package http

import (
	"net/http"

	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/http/handlers"
	"github.com/mauv0809/qa-pulse/internal/notifier"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

func NewServer(metricsHandler http.Handler, refresher collector.Refresher, auditor usecases.Auditor, notifier notifier.Notifier) *Server {
	server := &Server{
		MetricsHandler: metricsHandler,
		Refresher:      refresher,
		Auditor:        auditor,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// Scrapes are frequent, so /metrics skips the request log.
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", s.wrap(handlers.HealthCheckHandler()))
	s.Router.Handle("POST /refresh", s.wrap(handlers.RefreshHandler(s.Refresher)))
	s.Router.Handle("GET /snapshot", s.wrap(handlers.SnapshotHandler(s.Refresher)))
	s.Router.Handle("GET /audit/labels", s.wrap(handlers.LabelAuditHandler(s.Auditor, s.Notifier)))
	s.Router.Handle("POST /automation-tasks", s.wrap(handlers.CreateAutomationTasksHandler(s.Auditor, s.Notifier)))
}

func (s *Server) wrap(h http.Handler) http.Handler {
	return Chain(h, requestLogMiddleware, paramsMiddleware)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
