package qase

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the QaseClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	ProjectCode string

	// Spies for method calls
	ListTestCasesFunc   func(filter Filter, limit, offset int) (CaseList, error)
	CountTestCasesFunc  func(filter Filter) (int, error)
	GetAllTestCasesFunc func(filter Filter) ([]TestCase, error)
	GetTestCaseFunc     func(id int) (TestCase, error)
	UpdateTestCaseFunc  func(id int, fields map[CustomField]string) error

	// Call records
	GetAllTestCasesCalls []Filter
	UpdateTestCaseCalls  []struct {
		ID     int
		Fields map[CustomField]string
	}
}

// NewMockClient creates a new mock instance for projectCode.
func NewMockClient(projectCode string) *MockClient {
	return &MockClient{ProjectCode: projectCode}
}

var _ QaseClient = (*MockClient)(nil)

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllTestCasesCalls = nil
	m.UpdateTestCaseCalls = nil
}

func (m *MockClient) ListTestCases(ctx context.Context, filter Filter, limit, offset int) (CaseList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListTestCasesFunc != nil {
		return m.ListTestCasesFunc(filter, limit, offset)
	}
	return CaseList{}, nil
}

func (m *MockClient) CountTestCases(ctx context.Context, filter Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountTestCasesFunc != nil {
		return m.CountTestCasesFunc(filter)
	}
	return 0, nil
}

func (m *MockClient) GetAllTestCases(ctx context.Context, filter Filter) ([]TestCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllTestCasesCalls = append(m.GetAllTestCasesCalls, filter)
	if m.GetAllTestCasesFunc != nil {
		return m.GetAllTestCasesFunc(filter)
	}
	return []TestCase{}, nil
}

func (m *MockClient) GetTestCase(ctx context.Context, id int) (TestCase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTestCaseFunc != nil {
		return m.GetTestCaseFunc(id)
	}
	return TestCase{ID: id}, nil
}

func (m *MockClient) UpdateTestCase(ctx context.Context, id int, fields map[CustomField]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateTestCaseCalls = append(m.UpdateTestCaseCalls, struct {
		ID     int
		Fields map[CustomField]string
	}{id, fields})
	if m.UpdateTestCaseFunc != nil {
		return m.UpdateTestCaseFunc(id, fields)
	}
	return nil
}

func (m *MockClient) TestCaseURL(appURL string, id int) string {
	return CaseURL(appURL, m.ProjectCode, id)
}
