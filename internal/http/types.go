package http

import (
	"net/http"

	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/notifier"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

type Server struct {
	MetricsHandler http.Handler
	Refresher      collector.Refresher
	Auditor        usecases.Auditor
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
