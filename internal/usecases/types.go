package usecases

import (
	"errors"
	"time"

	"github.com/mauv0809/qa-pulse/internal/github"
	"github.com/mauv0809/qa-pulse/internal/jira"
	"github.com/mauv0809/qa-pulse/internal/qase"
)

// Usecases derives QA metrics from the Qase, Jira and GitHub clients.
type Usecases struct {
	qase   qase.QaseClient
	jira   jira.JiraClient
	github github.GitHubClient
	opts   Options
	now    func() time.Time
}

// Options carries the project identifiers the derivations need.
type Options struct {
	QaseAppURL      string
	QaseProjectCode string
	JiraProjectKey  string
	BaseBranch      string
	CommitAuthor    string
}

// LeadTime sums, over finished automation tasks, the days between the due date and
// completion (ActualDays) and between the due date and the start of work (ExpectedDays).
type LeadTime struct {
	ActualDays   int
	ExpectedDays int
	Issues       int
}

// LabelViolation is an automation task missing one or more of the required labels.
type LabelViolation struct {
	TaskKey string   `json:"task_key"`
	TestID  int      `json:"test_id"`
	Labels  []string `json:"labels"`
	Missing []string `json:"missing"`
}

// CreatedTask links a test case to the automation task created for it.
type CreatedTask struct {
	TestID  int    `json:"test_id"`
	TaskKey string `json:"task_key,omitempty"`
	TaskURL string `json:"task_url,omitempty"`
	DryRun  bool   `json:"dry_run"`
}

var (
	ErrStatusCategoryMismatch = errors.New("issue status category mismatch")
	ErrNoDueDate              = errors.New("issue has no due date")
	ErrNoProjectKey           = errors.New("jira project key is not configured")
)

// Labels every smoke automation task must carry.
var requiredTaskLabels = []string{"automation", "new_test", "smoke"}

const (
	finishedNewTestTasksJQL = "labels in (automation) AND labels in (new_test) AND labels in (smoke) AND status = Done AND resolution = Done"
	leadTimeJQL             = "labels IN (automation) AND labels IN (new_test) AND labels IN (smoke) AND statusCategory = Done"
)
