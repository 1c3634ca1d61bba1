package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendDigestFunc       func(snapshot collector.Snapshot, dryRun bool) (string, error)
	SendLabelAuditFunc   func(violations []usecases.LabelViolation, dryRun bool) (string, error)
	SendCreatedTasksFunc func(tasks []usecases.CreatedTask, dryRun bool) (string, error)

	// Call records
	SendDigestCalls       []collector.Snapshot
	SendLabelAuditCalls   [][]usecases.LabelViolation
	SendCreatedTasksCalls [][]usecases.CreatedTask
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

var _ Notifier = (*Mock)(nil)

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDigestCalls = nil
	m.SendLabelAuditCalls = nil
	m.SendCreatedTasksCalls = nil
}

func (m *Mock) SendDigest(ctx context.Context, snapshot collector.Snapshot, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendDigestCalls = append(m.SendDigestCalls, snapshot)
	if m.SendDigestFunc != nil {
		return m.SendDigestFunc(snapshot, dryRun)
	}
	return "ts", nil
}

func (m *Mock) SendLabelAudit(ctx context.Context, violations []usecases.LabelViolation, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLabelAuditCalls = append(m.SendLabelAuditCalls, violations)
	if m.SendLabelAuditFunc != nil {
		return m.SendLabelAuditFunc(violations, dryRun)
	}
	return "ts", nil
}

func (m *Mock) SendCreatedTasks(ctx context.Context, tasks []usecases.CreatedTask, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCreatedTasksCalls = append(m.SendCreatedTasksCalls, tasks)
	if m.SendCreatedTasksFunc != nil {
		return m.SendCreatedTasksFunc(tasks, dryRun)
	}
	return "ts", nil
}

// DigestCount returns the number of digests sent.
func (m *Mock) DigestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendDigestCalls)
}

// LabelAuditCount returns the number of label audits sent.
func (m *Mock) LabelAuditCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendLabelAuditCalls)
}
