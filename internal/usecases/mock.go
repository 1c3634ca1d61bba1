package usecases

import (
	"context"
	"sync"
	"time"
)

// MockUsecases is a mock implementation of MetricSource and Auditor for testing.
type MockUsecases struct {
	mu sync.Mutex

	SmokeTestCountFunc         func(automated bool) (int, error)
	SmokeExecutionHoursFunc    func(automated bool) (float64, error)
	BlockedManualSmokeFunc     func() (int, float64, error)
	ManualSmokeWithoutTaskFunc func() (int, float64, error)
	AutomationLeadTimeFunc     func() (LeadTime, error)
	OpenPullRequestsFunc       func() (int, error)
	CommitsSinceFunc           func(window time.Duration) (int, error)
	LabelViolationsFunc        func() ([]LabelViolation, error)
	CreateTasksFunc            func(dryRun bool) ([]CreatedTask, error)

	CreateTasksCalls []bool
}

func NewMockUsecases() *MockUsecases {
	return &MockUsecases{}
}

var (
	_ MetricSource = (*MockUsecases)(nil)
	_ Auditor      = (*MockUsecases)(nil)
)

func (m *MockUsecases) SmokeTestCount(ctx context.Context, automated bool) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SmokeTestCountFunc != nil {
		return m.SmokeTestCountFunc(automated)
	}
	return 0, nil
}

func (m *MockUsecases) SmokeExecutionHours(ctx context.Context, automated bool) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SmokeExecutionHoursFunc != nil {
		return m.SmokeExecutionHoursFunc(automated)
	}
	return 0, nil
}

func (m *MockUsecases) BlockedManualSmoke(ctx context.Context) (int, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.BlockedManualSmokeFunc != nil {
		return m.BlockedManualSmokeFunc()
	}
	return 0, 0, nil
}

func (m *MockUsecases) ManualSmokeWithoutTask(ctx context.Context) (int, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ManualSmokeWithoutTaskFunc != nil {
		return m.ManualSmokeWithoutTaskFunc()
	}
	return 0, 0, nil
}

func (m *MockUsecases) AutomationLeadTime(ctx context.Context) (LeadTime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AutomationLeadTimeFunc != nil {
		return m.AutomationLeadTimeFunc()
	}
	return LeadTime{}, nil
}

func (m *MockUsecases) OpenPullRequests(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OpenPullRequestsFunc != nil {
		return m.OpenPullRequestsFunc()
	}
	return 0, nil
}

func (m *MockUsecases) CommitsSince(ctx context.Context, window time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CommitsSinceFunc != nil {
		return m.CommitsSinceFunc(window)
	}
	return 0, nil
}

func (m *MockUsecases) AutomationTasksWithoutRequiredLabels(ctx context.Context) ([]LabelViolation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LabelViolationsFunc != nil {
		return m.LabelViolationsFunc()
	}
	return []LabelViolation{}, nil
}

func (m *MockUsecases) CreateMissingAutomationTasks(ctx context.Context, dryRun bool) ([]CreatedTask, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateTasksCalls = append(m.CreateTasksCalls, dryRun)
	if m.CreateTasksFunc != nil {
		return m.CreateTasksFunc(dryRun)
	}
	return []CreatedTask{}, nil
}
