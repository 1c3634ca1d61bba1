package metrics

// Metrics defines the interface for publishing QA gauges and refresh self-metrics.
// This decouples the collector from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	SetGauge(name GaugeName, value float64) bool
	IncRefreshRuns()
	IncRefreshFailures(probe string)
	ObserveRefreshDuration(duration float64)
	SetLastRefresh(unixSeconds float64)
	SetStartupTime(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
}
