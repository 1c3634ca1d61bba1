package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/paginate"
	"github.com/mauv0809/qa-pulse/internal/rest"
)

const (
	searchPageSize    = 50
	changelogPageSize = 100
)

// NewClient creates a Jira client authenticating with an account email and API token.
func NewClient(baseURL, email, apiToken string) *APIClient {
	api := rest.NewClient("jira", baseURL, func(req *http.Request) {
		req.SetBasicAuth(email, apiToken)
	})
	return &APIClient{
		api:     api,
		BaseURL: api.BaseURL,
	}
}

// Ensure APIClient implements the JiraClient interface.
var _ JiraClient = (*APIClient)(nil)

// SearchIssues runs a JQL search and returns one page of results.
func (c *APIClient) SearchIssues(ctx context.Context, params SearchParams) (SearchResponse, error) {
	log.Debug("Searching issues", "jql", params.JQL, "startAt", params.StartAt, "maxResults", params.MaxResults)
	var resp SearchResponse
	if err := c.api.Post(ctx, "/rest/api/2/search", params, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

// CountIssues returns the number of issues matching jql without fetching any of them.
func (c *APIClient) CountIssues(ctx context.Context, jql string) (int, error) {
	resp, err := c.SearchIssues(ctx, SearchParams{JQL: jql, MaxResults: 0})
	if err != nil {
		return 0, err
	}
	return resp.Total, nil
}

// GetAllIssues fetches every issue matching jql, 50 per page.
func (c *APIClient) GetAllIssues(ctx context.Context, jql string, fields ...string) ([]Issue, error) {
	log.Info("Fetching all issues", "jql", jql)
	issues, err := paginate.All(ctx, searchPageSize,
		func(ctx context.Context) (int, error) {
			return c.CountIssues(ctx, jql)
		},
		func(ctx context.Context, offset, limit int) ([]Issue, error) {
			resp, err := c.SearchIssues(ctx, SearchParams{JQL: jql, StartAt: offset, MaxResults: limit, Fields: fields})
			if err != nil {
				return nil, err
			}
			return resp.Issues, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("error fetching issues for %q: %w", jql, err)
	}
	log.Info("Fetched all issues", "jql", jql, "count", len(issues))
	return issues, nil
}

// GetIssue fetches a single issue. When fields is empty Jira returns its default field set.
func (c *APIClient) GetIssue(ctx context.Context, key string, fields ...string) (Issue, error) {
	log.Debug("Fetching issue", "key", key)
	query := url.Values{}
	if len(fields) > 0 {
		query.Set("fields", strings.Join(fields, ","))
	}
	var issue Issue
	if err := c.api.Get(ctx, "/rest/api/2/issue/"+url.PathEscape(key), query, &issue); err != nil {
		return Issue{}, err
	}
	return issue, nil
}

// GetChangelog returns one page of an issue's change history.
func (c *APIClient) GetChangelog(ctx context.Context, key string, startAt, maxResults int) (ChangelogPage, error) {
	log.Debug("Fetching changelog", "key", key, "startAt", startAt)
	query := url.Values{}
	query.Set("startAt", strconv.Itoa(startAt))
	query.Set("maxResults", strconv.Itoa(maxResults))
	var page ChangelogPage
	if err := c.api.Get(ctx, "/rest/api/2/issue/"+url.PathEscape(key)+"/changelog", query, &page); err != nil {
		return ChangelogPage{}, err
	}
	return page, nil
}

// GetAllChangelog returns the complete change history of an issue, oldest first.
func (c *APIClient) GetAllChangelog(ctx context.Context, key string) ([]ChangelogEntry, error) {
	return paginate.All(ctx, changelogPageSize,
		func(ctx context.Context) (int, error) {
			page, err := c.GetChangelog(ctx, key, 0, 1)
			if err != nil {
				return 0, err
			}
			return page.Total, nil
		},
		func(ctx context.Context, offset, limit int) ([]ChangelogEntry, error) {
			page, err := c.GetChangelog(ctx, key, offset, limit)
			if err != nil {
				return nil, err
			}
			return page.Values, nil
		},
	)
}

// CreateIssue creates an issue and returns its identifiers.
func (c *APIClient) CreateIssue(ctx context.Context, params CreateIssueParams) (CreatedIssue, error) {
	log.Info("Creating issue", "project", params.ProjectKey, "summary", params.Summary)
	fields := map[string]any{
		"project":   map[string]string{"key": params.ProjectKey},
		"issuetype": map[string]string{"id": string(params.IssueType)},
		"summary":   params.Summary,
	}
	if params.Description != "" {
		fields["description"] = params.Description
	}
	if len(params.Labels) > 0 {
		fields["labels"] = params.Labels
	}
	if params.AssigneeID != "" {
		fields["assignee"] = map[string]string{"id": params.AssigneeID}
	}
	if params.Priority != "" {
		fields["priority"] = map[string]string{"id": string(params.Priority)}
	}
	for field, value := range params.CustomFields {
		fields[string(field)] = value
	}

	var created CreatedIssue
	if err := c.api.Post(ctx, "/rest/api/2/issue", map[string]any{"fields": fields}, &created); err != nil {
		return CreatedIssue{}, err
	}
	log.Info("Created issue", "key", created.Key)
	return created, nil
}

// EditIssue updates the non-empty fields of params.
func (c *APIClient) EditIssue(ctx context.Context, key string, params EditIssueParams) error {
	log.Info("Editing issue", "key", key)
	fields := map[string]any{}
	if params.Summary != "" {
		fields["summary"] = params.Summary
	}
	if params.Description != "" {
		fields["description"] = params.Description
	}
	return c.api.Put(ctx, "/rest/api/2/issue/"+url.PathEscape(key), map[string]any{"fields": fields}, nil)
}

func (c *APIClient) AddComment(ctx context.Context, key, body string) error {
	log.Info("Adding comment to issue", "key", key)
	return c.api.Post(ctx, "/rest/api/2/issue/"+url.PathEscape(key)+"/comment", map[string]string{"body": body}, nil)
}

// AddIssueLink links two issues. The inward issue shows e.g. "blocks", the outward one "is blocked by".
func (c *APIClient) AddIssueLink(ctx context.Context, linkType LinkType, inwardKey, outwardKey string) error {
	log.Info("Adding issue link", "inward", inwardKey, "outward", outwardKey)
	payload := map[string]any{
		"type":         map[string]string{"id": string(linkType)},
		"inwardIssue":  map[string]string{"key": inwardKey},
		"outwardIssue": map[string]string{"key": outwardKey},
	}
	return c.api.Post(ctx, "/rest/api/2/issueLink", payload, nil)
}

func (c *APIClient) GetTransitions(ctx context.Context, key string) ([]Transition, error) {
	var resp struct {
		Transitions []Transition `json:"transitions"`
	}
	if err := c.api.Get(ctx, "/rest/api/2/issue/"+url.PathEscape(key)+"/transitions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transitions, nil
}

func (c *APIClient) TransitionIssue(ctx context.Context, key string, transition TransitionStatus) error {
	log.Info("Transitioning issue", "key", key, "transition", transition)
	payload := map[string]any{
		"transition": map[string]string{"id": string(transition)},
	}
	return c.api.Post(ctx, "/rest/api/2/issue/"+url.PathEscape(key)+"/transitions", payload, nil)
}

func (c *APIClient) GetWatchers(ctx context.Context, key string) (Watchers, error) {
	var watchers Watchers
	if err := c.api.Get(ctx, "/rest/api/2/issue/"+url.PathEscape(key)+"/watchers", nil, &watchers); err != nil {
		return Watchers{}, err
	}
	return watchers, nil
}

// AddWatcher adds the user with accountID as a watcher. Jira expects the bare id as a JSON string.
func (c *APIClient) AddWatcher(ctx context.Context, key, accountID string) error {
	log.Info("Adding issue watcher", "key", key, "accountID", accountID)
	return c.api.Post(ctx, "/rest/api/2/issue/"+url.PathEscape(key)+"/watchers", accountID, nil)
}

// BrowseURL returns the web link of an issue.
func (c *APIClient) BrowseURL(key string) string {
	return BrowseURL(c.BaseURL, key)
}

func BrowseURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/browse/" + key
}

// KeyFromURL returns the issue key stored as the last path segment of an issue link.
func KeyFromURL(issueURL string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(issueURL), "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

var timeLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	time.RFC3339Nano,
	"2006-01-02",
}

// ParseTime parses the timestamp and date formats returned by Jira.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised jira time %q", value)
}
