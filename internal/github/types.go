package github

import (
	"time"

	gh "github.com/google/go-github/v74/github"
)

// APIClient reads commits and pull requests of a single repository.
type APIClient struct {
	client *gh.Client
	Owner  string
	Repo   string
}

// CommitFilter narrows a commit listing. Zero values are not sent.
type CommitFilter struct {
	Since  time.Time
	Until  time.Time
	Author string
}

// PullFilter narrows a pull request listing. Empty values fall back to the API defaults.
type PullFilter struct {
	State     string
	Base      string
	Head      string
	Sort      string
	Direction string
}

type Commit struct {
	SHA    string
	Author string
	Date   time.Time
}

type PullRequest struct {
	Number    int
	Title     string
	State     string
	CreatedAt time.Time
}
