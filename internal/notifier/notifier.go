package notifier

import (
	"context"

	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

// Notifier defines a high-level interface for sending notifications about QA events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
// Every method returns the provider's message id.
type Notifier interface {
	// Periodic summary of the gauges
	SendDigest(ctx context.Context, snapshot collector.Snapshot, dryRun bool) (string, error)
	// Automation tasks lacking required labels
	SendLabelAudit(ctx context.Context, violations []usecases.LabelViolation, dryRun bool) (string, error)
	// Automation tasks opened for manual smoke tests
	SendCreatedTasks(ctx context.Context, tasks []usecases.CreatedTask, dryRun bool) (string, error)
}

// Nop is a Notifier that sends nothing. It is used when Slack is not configured.
type Nop struct{}

var _ Notifier = Nop{}

func (Nop) SendDigest(ctx context.Context, snapshot collector.Snapshot, dryRun bool) (string, error) {
	return "", nil
}

func (Nop) SendLabelAudit(ctx context.Context, violations []usecases.LabelViolation, dryRun bool) (string, error) {
	return "", nil
}

func (Nop) SendCreatedTasks(ctx context.Context, tasks []usecases.CreatedTask, dryRun bool) (string, error) {
	return "", nil
}
