package collector

import (
	"context"

	"github.com/mauv0809/qa-pulse/internal/metrics"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

// DefaultProbes wires every QA gauge to its derivation, in refresh order.
func DefaultProbes(source usecases.MetricSource) []Probe {
	return []Probe{
		{
			Name:   "smoke_automated",
			Gauges: []metrics.GaugeName{metrics.GaugeSmokeAutomated},
			Compute: func(ctx context.Context) ([]float64, error) {
				n, err := source.SmokeTestCount(ctx, true)
				return []float64{float64(n)}, err
			},
		},
		{
			Name:   "smoke_manual",
			Gauges: []metrics.GaugeName{metrics.GaugeSmokeManual},
			Compute: func(ctx context.Context) ([]float64, error) {
				n, err := source.SmokeTestCount(ctx, false)
				return []float64{float64(n)}, err
			},
		},
		{
			Name:   "smoke_automated_hours",
			Gauges: []metrics.GaugeName{metrics.GaugeSmokeAutomatedHours},
			Compute: func(ctx context.Context) ([]float64, error) {
				h, err := source.SmokeExecutionHours(ctx, true)
				return []float64{h}, err
			},
		},
		{
			Name:   "smoke_manual_hours",
			Gauges: []metrics.GaugeName{metrics.GaugeSmokeManualHours},
			Compute: func(ctx context.Context) ([]float64, error) {
				h, err := source.SmokeExecutionHours(ctx, false)
				return []float64{h}, err
			},
		},
		{
			Name:   "blocked_manual_smoke",
			Gauges: []metrics.GaugeName{metrics.GaugeBlockedManualSmoke, metrics.GaugeBlockedManualSmokeHours},
			Compute: func(ctx context.Context) ([]float64, error) {
				n, h, err := source.BlockedManualSmoke(ctx)
				return []float64{float64(n), h}, err
			},
		},
		{
			Name:   "manual_smoke_without_task",
			Gauges: []metrics.GaugeName{metrics.GaugeManualSmokeWithoutTask, metrics.GaugeManualSmokeWithoutTaskHours},
			Compute: func(ctx context.Context) ([]float64, error) {
				n, h, err := source.ManualSmokeWithoutTask(ctx)
				return []float64{float64(n), h}, err
			},
		},
		{
			Name:   "automation_lead_time",
			Gauges: []metrics.GaugeName{metrics.GaugeAutomationActualDays, metrics.GaugeAutomationExpectedDays},
			Compute: func(ctx context.Context) ([]float64, error) {
				lt, err := source.AutomationLeadTime(ctx)
				return []float64{float64(lt.ActualDays), float64(lt.ExpectedDays)}, err
			},
		},
		{
			Name:   "open_pull_requests",
			Gauges: []metrics.GaugeName{metrics.GaugeOpenPullRequests},
			Compute: func(ctx context.Context) ([]float64, error) {
				n, err := source.OpenPullRequests(ctx)
				return []float64{float64(n)}, err
			},
		},
		{
			Name:   "recent_commits",
			Gauges: []metrics.GaugeName{metrics.GaugeRecentCommits},
			Compute: func(ctx context.Context) ([]float64, error) {
				n, err := source.CommitsSince(ctx, CommitWindow)
				return []float64{float64(n)}, err
			},
		},
	}
}
