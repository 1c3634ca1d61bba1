package collector

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/qa-pulse/internal/metrics"
	"github.com/mauv0809/qa-pulse/internal/pubsub"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

// New creates a Collector refreshing the default QA gauges from source.
func New(source usecases.MetricSource, m metrics.Metrics, ps pubsub.PubSubClient) *Collector {
	return NewWithProbes(DefaultProbes(source), m, ps)
}

// NewWithProbes creates a Collector for an explicit probe list.
func NewWithProbes(probes []Probe, m metrics.Metrics, ps pubsub.PubSubClient) *Collector {
	return &Collector{
		probes:  probes,
		metrics: m,
		pubsub:  ps,
		values:  make(map[metrics.GaugeName]float64),
	}
}

// Refresh recomputes every gauge in order. A failing probe is logged and counted,
// and its gauges keep their previous values. Cycles never overlap.
func (c *Collector) Refresh(ctx context.Context) Snapshot {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	runID := uuid.NewString()
	startedAt := time.Now()
	log.Info("Starting gauge refresh...", "run", runID)

	failed := []string{}
	for _, probe := range c.probes {
		if err := c.runProbe(ctx, probe); err != nil {
			log.Error("Failed to refresh gauges", "probe", probe.Name, "run", runID, "error", err)
			c.metrics.IncRefreshFailures(probe.Name)
			failed = append(failed, probe.Name)
		}
	}

	duration := time.Since(startedAt)
	c.metrics.IncRefreshRuns()
	c.metrics.ObserveRefreshDuration(duration.Seconds())
	c.metrics.SetLastRefresh(float64(time.Now().Unix()))

	c.mu.Lock()
	snapshot := Snapshot{
		RunID:     runID,
		StartedAt: startedAt,
		Duration:  duration,
		Values:    make(map[string]float64, len(c.values)),
		Failed:    failed,
	}
	for name, value := range c.values {
		snapshot.Values[string(name)] = value
	}
	c.last = &snapshot
	c.mu.Unlock()

	log.Info("Gauge refresh finished.", "run", runID, "duration", duration, "failed", len(failed))

	if err := c.pubsub.SendMessage(ctx, pubsub.EventMetricsSnapshot, snapshot); err != nil {
		log.Error("Failed to publish snapshot", "run", runID, "error", err)
	}
	return snapshot
}

// LastSnapshot returns a copy of the most recent refresh result.
func (c *Collector) LastSnapshot() (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.last == nil {
		return Snapshot{}, false
	}
	snapshot := *c.last
	snapshot.Values = maps.Clone(c.last.Values)
	snapshot.Failed = append([]string{}, c.last.Failed...)
	return snapshot, true
}

func (c *Collector) runProbe(ctx context.Context, probe Probe) error {
	values, err := probe.Compute(ctx)
	if err != nil {
		return err
	}
	if len(values) != len(probe.Gauges) {
		return fmt.Errorf("probe returned %d values for %d gauges", len(values), len(probe.Gauges))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, name := range probe.Gauges {
		c.metrics.SetGauge(name, values[i])
		c.values[name] = values[i]
	}
	log.Debug("Refreshed gauges", "probe", probe.Name, "gauges", probe.Gauges, "values", values)
	return nil
}
