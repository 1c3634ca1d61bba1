package collector

import (
	"context"
	"sync"
	"time"

	"github.com/mauv0809/qa-pulse/internal/metrics"
	"github.com/mauv0809/qa-pulse/internal/pubsub"
)

// Probe computes the values of one or more gauges in a single derivation.
// Compute must return exactly one value per entry in Gauges.
type Probe struct {
	Name    string
	Gauges  []metrics.GaugeName
	Compute func(ctx context.Context) ([]float64, error)
}

// Snapshot is the outcome of one refresh cycle. Values holds every gauge's
// current value, including values retained from earlier cycles for failed probes.
type Snapshot struct {
	RunID     string             `json:"run_id" msgpack:"run_id"`
	StartedAt time.Time          `json:"started_at" msgpack:"started_at"`
	Duration  time.Duration      `json:"duration_ns" msgpack:"duration_ns"`
	Values    map[string]float64 `json:"values" msgpack:"values"`
	Failed    []string           `json:"failed" msgpack:"failed"`
}

// Collector recomputes the QA gauges on demand.
type Collector struct {
	probes  []Probe
	metrics metrics.Metrics
	pubsub  pubsub.PubSubClient

	// refreshMu serializes refresh cycles.
	refreshMu sync.Mutex

	mu     sync.RWMutex
	values map[metrics.GaugeName]float64
	last   *Snapshot
}

// CommitWindow is the trailing window counted by the recent commits gauge.
const CommitWindow = 7 * 24 * time.Hour
