package usecases

import (
	"context"
	"time"
)

// MetricSource is the set of derivations the metrics collector reads from.
type MetricSource interface {
	SmokeTestCount(ctx context.Context, automated bool) (int, error)
	SmokeExecutionHours(ctx context.Context, automated bool) (float64, error)
	BlockedManualSmoke(ctx context.Context) (int, float64, error)
	ManualSmokeWithoutTask(ctx context.Context) (int, float64, error)
	AutomationLeadTime(ctx context.Context) (LeadTime, error)
	OpenPullRequests(ctx context.Context) (int, error)
	CommitsSince(ctx context.Context, window time.Duration) (int, error)
}

// Auditor exposes the maintenance operations over automation tasks.
type Auditor interface {
	AutomationTasksWithoutRequiredLabels(ctx context.Context) ([]LabelViolation, error)
	CreateMissingAutomationTasks(ctx context.Context, dryRun bool) ([]CreatedTask, error)
}

var (
	_ MetricSource = (*Usecases)(nil)
	_ Auditor      = (*Usecases)(nil)
)
