package metrics

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Gauges: make(map[GaugeName]prometheus.Gauge, len(Gauges)),
		RefreshRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qa_pulse_refresh_runs_total",
			Help: "The total number of gauge refresh cycles.",
		}),
		RefreshFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qa_pulse_refresh_failures_total",
			Help: "The total number of failed gauge computations, by probe.",
		}, []string{"probe"}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "qa_pulse_refresh_duration_seconds",
			Help:    "The duration of a full gauge refresh cycle.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		LastRefreshSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qa_pulse_last_refresh_timestamp_seconds",
			Help: "Unix time of the last completed refresh cycle.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qa_pulse_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qa_pulse_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "qa_pulse_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
	}

	for _, def := range Gauges {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: string(def.Name),
			Help: def.Help,
		})
		s.Gauges[def.Name] = g
		reg.MustRegister(g)
	}

	reg.MustRegister(
		s.RefreshRuns,
		s.RefreshFailures,
		s.RefreshDuration,
		s.LastRefreshSeconds,
		s.StartupTimeSeconds,
		s.SlackNotifSent,
		s.SlackNotifFailed,
	)

	return s
}

// SetGauge overwrites the value of a QA gauge. It reports false for unknown gauges.
func (s *Service) SetGauge(name GaugeName, value float64) bool {
	g, ok := s.Gauges[name]
	if !ok {
		log.Warn("Unknown gauge", "name", name)
		return false
	}
	g.Set(value)
	return true
}

func (s *Service) IncRefreshRuns() {
	s.RefreshRuns.Inc()
}

func (s *Service) IncRefreshFailures(probe string) {
	s.RefreshFailures.WithLabelValues(probe).Inc()
}

func (s *Service) ObserveRefreshDuration(duration float64) {
	s.RefreshDuration.Observe(duration)
}

func (s *Service) SetLastRefresh(unixSeconds float64) {
	s.LastRefreshSeconds.Set(unixSeconds)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}
