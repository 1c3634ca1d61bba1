package jira

import "context"

// JiraClient defines the interface for interacting with the Jira API.
// This allows for mock implementations to be used in tests.
type JiraClient interface {
	SearchIssues(ctx context.Context, params SearchParams) (SearchResponse, error)
	CountIssues(ctx context.Context, jql string) (int, error)
	GetAllIssues(ctx context.Context, jql string, fields ...string) ([]Issue, error)
	GetIssue(ctx context.Context, key string, fields ...string) (Issue, error)
	GetChangelog(ctx context.Context, key string, startAt, maxResults int) (ChangelogPage, error)
	GetAllChangelog(ctx context.Context, key string) ([]ChangelogEntry, error)
	CreateIssue(ctx context.Context, params CreateIssueParams) (CreatedIssue, error)
	EditIssue(ctx context.Context, key string, params EditIssueParams) error
	AddComment(ctx context.Context, key, body string) error
	AddIssueLink(ctx context.Context, linkType LinkType, inwardKey, outwardKey string) error
	GetTransitions(ctx context.Context, key string) ([]Transition, error)
	TransitionIssue(ctx context.Context, key string, transition TransitionStatus) error
	GetWatchers(ctx context.Context, key string) (Watchers, error)
	AddWatcher(ctx context.Context, key, accountID string) error
	BrowseURL(key string) string
}
