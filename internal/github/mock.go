package github

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the GitHubClient interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	ListCommitsFunc      func(filter CommitFilter) ([]Commit, error)
	ListPullRequestsFunc func(filter PullFilter) ([]PullRequest, error)

	ListCommitsCalls      []CommitFilter
	ListPullRequestsCalls []PullFilter
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

var _ GitHubClient = (*MockClient)(nil)

func (m *MockClient) ListCommits(ctx context.Context, filter CommitFilter) ([]Commit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCommitsCalls = append(m.ListCommitsCalls, filter)
	if m.ListCommitsFunc != nil {
		return m.ListCommitsFunc(filter)
	}
	return []Commit{}, nil
}

func (m *MockClient) ListPullRequests(ctx context.Context, filter PullFilter) ([]PullRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListPullRequestsCalls = append(m.ListPullRequestsCalls, filter)
	if m.ListPullRequestsFunc != nil {
		return m.ListPullRequestsFunc(filter)
	}
	return []PullRequest{}, nil
}
