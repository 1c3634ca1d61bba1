package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	gh "github.com/google/go-github/v74/github"
	"github.com/mauv0809/qa-pulse/internal/rest"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100
)

// NewClient creates a client for repo ("owner/name") authenticating with a personal access token.
// A non-default baseURL selects a GitHub Enterprise instance.
func NewClient(token, repo, baseURL string) (*APIClient, error) {
	if token == "" {
		return nil, errors.New("GitHub token is required")
	}
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("GitHub repository must be in owner/name form, got %q", repo)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	client := gh.NewClient(tc)
	if baseURL != "" && strings.TrimRight(baseURL, "/") != defaultBaseURL {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", baseURL, err)
		}
	}

	return &APIClient{
		client: client,
		Owner:  owner,
		Repo:   name,
	}, nil
}

// Ensure APIClient implements the GitHubClient interface.
var _ GitHubClient = (*APIClient)(nil)

// ListCommits returns every commit matching filter, following pagination.
func (c *APIClient) ListCommits(ctx context.Context, filter CommitFilter) ([]Commit, error) {
	opts := &gh.CommitsListOptions{
		Author:      filter.Author,
		Since:       filter.Since,
		Until:       filter.Until,
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	var commits []Commit
	for {
		page, resp, err := c.client.Repositories.ListCommits(ctx, c.Owner, c.Repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list commits: %w", remoteError(err))
		}
		for _, rc := range page {
			author := rc.GetCommit().GetAuthor()
			commits = append(commits, Commit{
				SHA:    rc.GetSHA(),
				Author: author.GetName(),
				Date:   author.GetDate().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	log.Debug("Listed commits", "repo", c.Owner+"/"+c.Repo, "count", len(commits))
	return commits, nil
}

// ListPullRequests returns every pull request matching filter, following pagination.
func (c *APIClient) ListPullRequests(ctx context.Context, filter PullFilter) ([]PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		State:       filter.State,
		Base:        filter.Base,
		Head:        filter.Head,
		Sort:        filter.Sort,
		Direction:   filter.Direction,
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	var pulls []PullRequest
	for {
		page, resp, err := c.client.PullRequests.List(ctx, c.Owner, c.Repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", remoteError(err))
		}
		for _, pr := range page {
			pulls = append(pulls, PullRequest{
				Number:    pr.GetNumber(),
				Title:     pr.GetTitle(),
				State:     pr.GetState(),
				CreatedAt: pr.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	log.Debug("Listed pull requests", "repo", c.Owner+"/"+c.Repo, "count", len(pulls))
	return pulls, nil
}

// remoteError maps GitHub API failures onto the shared RemoteRequestError.
func remoteError(err error) error {
	var ghErr *gh.ErrorResponse
	if !errors.As(err, &ghErr) || ghErr.Response == nil {
		return err
	}
	reqErr := &rest.RemoteRequestError{
		Service:    "github",
		StatusCode: ghErr.Response.StatusCode,
		Body:       ghErr.Message,
	}
	if req := ghErr.Response.Request; req != nil {
		reqErr.Method = req.Method
		reqErr.URL = req.URL.String()
	}
	if reqErr.StatusCode == 0 {
		reqErr.StatusCode = http.StatusInternalServerError
	}
	return reqErr
}
