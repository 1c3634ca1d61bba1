package github

import "context"

// GitHubClient defines the interface for reading repository activity.
type GitHubClient interface {
	ListCommits(ctx context.Context, filter CommitFilter) ([]Commit, error)
	ListPullRequests(ctx context.Context, filter PullFilter) ([]PullRequest, error)
}
