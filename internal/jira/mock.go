package jira

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the JiraClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	BaseURL string

	// Spies for method calls
	SearchIssuesFunc    func(params SearchParams) (SearchResponse, error)
	CountIssuesFunc     func(jql string) (int, error)
	GetAllIssuesFunc    func(jql string, fields []string) ([]Issue, error)
	GetIssueFunc        func(key string, fields []string) (Issue, error)
	GetChangelogFunc    func(key string, startAt, maxResults int) (ChangelogPage, error)
	GetAllChangelogFunc func(key string) ([]ChangelogEntry, error)
	CreateIssueFunc     func(params CreateIssueParams) (CreatedIssue, error)
	EditIssueFunc       func(key string, params EditIssueParams) error
	AddCommentFunc      func(key, body string) error
	AddIssueLinkFunc    func(linkType LinkType, inwardKey, outwardKey string) error
	GetTransitionsFunc  func(key string) ([]Transition, error)
	TransitionIssueFunc func(key string, transition TransitionStatus) error
	GetWatchersFunc     func(key string) (Watchers, error)
	AddWatcherFunc      func(key, accountID string) error

	// Call records
	GetAllIssuesCalls    []string
	GetIssueCalls        []string
	GetAllChangelogCalls []string
	CreateIssueCalls     []CreateIssueParams
	TransitionIssueCalls []struct {
		Key        string
		Transition TransitionStatus
	}
}

// NewMockClient creates a new mock instance whose browse links are rooted at baseURL.
func NewMockClient(baseURL string) *MockClient {
	return &MockClient{BaseURL: baseURL}
}

var _ JiraClient = (*MockClient)(nil)

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllIssuesCalls = nil
	m.GetIssueCalls = nil
	m.GetAllChangelogCalls = nil
	m.CreateIssueCalls = nil
	m.TransitionIssueCalls = nil
}

func (m *MockClient) SearchIssues(ctx context.Context, params SearchParams) (SearchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SearchIssuesFunc != nil {
		return m.SearchIssuesFunc(params)
	}
	return SearchResponse{}, nil
}

func (m *MockClient) CountIssues(ctx context.Context, jql string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountIssuesFunc != nil {
		return m.CountIssuesFunc(jql)
	}
	return 0, nil
}

func (m *MockClient) GetAllIssues(ctx context.Context, jql string, fields ...string) ([]Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllIssuesCalls = append(m.GetAllIssuesCalls, jql)
	if m.GetAllIssuesFunc != nil {
		return m.GetAllIssuesFunc(jql, fields)
	}
	return []Issue{}, nil
}

func (m *MockClient) GetIssue(ctx context.Context, key string, fields ...string) (Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetIssueCalls = append(m.GetIssueCalls, key)
	if m.GetIssueFunc != nil {
		return m.GetIssueFunc(key, fields)
	}
	return Issue{Key: key}, nil
}

func (m *MockClient) GetChangelog(ctx context.Context, key string, startAt, maxResults int) (ChangelogPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetChangelogFunc != nil {
		return m.GetChangelogFunc(key, startAt, maxResults)
	}
	return ChangelogPage{}, nil
}

func (m *MockClient) GetAllChangelog(ctx context.Context, key string) ([]ChangelogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllChangelogCalls = append(m.GetAllChangelogCalls, key)
	if m.GetAllChangelogFunc != nil {
		return m.GetAllChangelogFunc(key)
	}
	return []ChangelogEntry{}, nil
}

func (m *MockClient) CreateIssue(ctx context.Context, params CreateIssueParams) (CreatedIssue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateIssueCalls = append(m.CreateIssueCalls, params)
	if m.CreateIssueFunc != nil {
		return m.CreateIssueFunc(params)
	}
	return CreatedIssue{}, nil
}

func (m *MockClient) EditIssue(ctx context.Context, key string, params EditIssueParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EditIssueFunc != nil {
		return m.EditIssueFunc(key, params)
	}
	return nil
}

func (m *MockClient) AddComment(ctx context.Context, key, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(key, body)
	}
	return nil
}

func (m *MockClient) AddIssueLink(ctx context.Context, linkType LinkType, inwardKey, outwardKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddIssueLinkFunc != nil {
		return m.AddIssueLinkFunc(linkType, inwardKey, outwardKey)
	}
	return nil
}

func (m *MockClient) GetTransitions(ctx context.Context, key string) ([]Transition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTransitionsFunc != nil {
		return m.GetTransitionsFunc(key)
	}
	return []Transition{}, nil
}

func (m *MockClient) TransitionIssue(ctx context.Context, key string, transition TransitionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TransitionIssueCalls = append(m.TransitionIssueCalls, struct {
		Key        string
		Transition TransitionStatus
	}{key, transition})
	if m.TransitionIssueFunc != nil {
		return m.TransitionIssueFunc(key, transition)
	}
	return nil
}

func (m *MockClient) GetWatchers(ctx context.Context, key string) (Watchers, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetWatchersFunc != nil {
		return m.GetWatchersFunc(key)
	}
	return Watchers{}, nil
}

func (m *MockClient) AddWatcher(ctx context.Context, key, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddWatcherFunc != nil {
		return m.AddWatcherFunc(key, accountID)
	}
	return nil
}

func (m *MockClient) BrowseURL(key string) string {
	return BrowseURL(m.BaseURL, key)
}
