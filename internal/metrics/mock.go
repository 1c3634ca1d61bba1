package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	gauges           map[GaugeName]float64
	refreshRuns      int
	refreshFailures  map[string]int
	refreshDurations []float64
	lastRefresh      float64
	startupTime      float64
	slackNotifSent   int
	slackNotifFailed int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		gauges:           make(map[GaugeName]float64),
		refreshFailures:  make(map[string]int),
		refreshDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) SetGauge(name GaugeName, value float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
	return true
}

func (m *Mock) IncRefreshRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshRuns++
}

func (m *Mock) IncRefreshFailures(probe string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshFailures[probe]++
}

func (m *Mock) ObserveRefreshDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshDurations = append(m.refreshDurations, duration)
}

func (m *Mock) SetLastRefresh(unixSeconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastRefresh = unixSeconds
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Gauge returns the last value set for name and whether it was ever set.
func (m *Mock) Gauge(name GaugeName) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.gauges[name]
	return v, ok
}

// RefreshRuns returns the number of times IncRefreshRuns was called.
func (m *Mock) RefreshRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshRuns
}

// RefreshFailures returns the number of failures recorded for probe.
func (m *Mock) RefreshFailures(probe string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshFailures[probe]
}

// RefreshDurations returns every observed refresh duration.
func (m *Mock) RefreshDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.refreshDurations...)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
