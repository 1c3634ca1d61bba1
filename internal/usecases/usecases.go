package usecases

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/github"
	"github.com/mauv0809/qa-pulse/internal/jira"
	"github.com/mauv0809/qa-pulse/internal/qase"
)

// New creates the derivation layer on top of the given clients.
func New(qaseClient qase.QaseClient, jiraClient jira.JiraClient, githubClient github.GitHubClient, opts Options) *Usecases {
	return &Usecases{
		qase:   qaseClient,
		jira:   jiraClient,
		github: githubClient,
		opts:   opts,
		now:    time.Now,
	}
}

// SmokeTests returns the actual smoke tests that are automated, or manual and awaiting automation.
func (u *Usecases) SmokeTests(ctx context.Context, automated bool) ([]qase.TestCase, error) {
	automation := qase.AutomationFilterManual
	if automated {
		automation = qase.AutomationFilterAutomated
	}
	return u.qase.GetAllTestCases(ctx, qase.Filter{
		Type:       qase.TypeSmoke,
		Status:     qase.StatusActual,
		Automation: automation,
	})
}

// TotalManualExecutionTime sums the manual execution time of tests in hours, rounded to one decimal.
// Tests without a usable value are logged and left out.
func (u *Usecases) TotalManualExecutionTime(tests []qase.TestCase) float64 {
	var minutes float64
	for _, test := range tests {
		raw := strings.TrimSpace(qase.CustomFieldManualExecutionTime.Value(test))
		if raw == "" {
			log.Warn("Test case has no manual execution time", "test", u.testURL(test.ID))
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Warn("Test case has an invalid manual execution time", "test", u.testURL(test.ID), "value", raw)
			continue
		}
		minutes += value
	}
	return math.Round(minutes/60*10) / 10
}

// AutomationTasks fetches the Jira tasks referenced by the tests' automation task field in a single query.
func (u *Usecases) AutomationTasks(ctx context.Context, tests []qase.TestCase) ([]jira.Issue, error) {
	var keys []string
	for _, test := range tests {
		key, ok := automationTaskKey(test)
		if !ok {
			log.Info("No automation task for test case", "test", u.testURL(test.ID))
			continue
		}
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return []jira.Issue{}, nil
	}
	return u.jira.GetAllIssues(ctx, fmt.Sprintf("key in (%s)", strings.Join(keys, ",")))
}

// BlockedTests returns the tests whose automation task is in the development blocked status.
func (u *Usecases) BlockedTests(ctx context.Context, tests []qase.TestCase) ([]qase.TestCase, error) {
	tasks, err := u.AutomationTasks(ctx, tests)
	if err != nil {
		return nil, err
	}

	blocked := []qase.TestCase{}
	for _, task := range tasks {
		if task.Fields.Status.ID != jira.StatusDevelopmentBlocked {
			continue
		}
		taskURL := u.jira.BrowseURL(task.Key)
		i := slices.IndexFunc(tests, func(test qase.TestCase) bool {
			return qase.CustomFieldAutomationTask.Value(test) == taskURL
		})
		if i < 0 {
			log.Warn("Blocked automation task does not match any test case", "task", taskURL)
			continue
		}
		blocked = append(blocked, tests[i])
	}
	return blocked, nil
}

// TestsWithoutAutomationTask returns the tests that do not reference an automation task.
func (u *Usecases) TestsWithoutAutomationTask(tests []qase.TestCase) []qase.TestCase {
	without := []qase.TestCase{}
	for _, test := range tests {
		if _, ok := automationTaskKey(test); !ok {
			without = append(without, test)
		}
	}
	return without
}

// FinishedNewTestTasks returns the resolved tasks that automated new smoke tests.
func (u *Usecases) FinishedNewTestTasks(ctx context.Context) ([]jira.Issue, error) {
	return u.jira.GetAllIssues(ctx, finishedNewTestTasksJQL)
}

// IssueChangelog returns the history entries of an issue that touch field.
func (u *Usecases) IssueChangelog(ctx context.Context, key, field string) ([]jira.ChangelogEntry, error) {
	entries, err := u.jira.GetAllChangelog(ctx, key)
	if err != nil {
		return nil, err
	}
	filtered := []jira.ChangelogEntry{}
	for _, entry := range entries {
		if slices.ContainsFunc(entry.Items, func(item jira.ChangeItem) bool { return item.Field == field }) {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// DueDateStatusChangeDiff returns the whole days between the issue's due date and the date
// its status category last changed. The issue must be in category and have a due date.
func DueDateStatusChangeDiff(issue jira.Issue, category jira.StatusCategoryID) (int, error) {
	actual := issue.Fields.Status.StatusCategory.ID
	if actual != category {
		return 0, fmt.Errorf("%w: issue %s is %s, expected %s", ErrStatusCategoryMismatch, issue.Key, actual, category)
	}
	if issue.Fields.DueDate == nil || *issue.Fields.DueDate == "" {
		return 0, fmt.Errorf("%w: issue %s", ErrNoDueDate, issue.Key)
	}
	dueDate, err := jira.ParseTime(*issue.Fields.DueDate)
	if err != nil {
		return 0, fmt.Errorf("issue %s: %w", issue.Key, err)
	}
	changed, err := jira.ParseTime(issue.Fields.StatusCategoryChangeDate)
	if err != nil {
		return 0, fmt.Errorf("issue %s: %w", issue.Key, err)
	}
	return daysBetween(changed, dueDate), nil
}

// AutomationLeadTime sums actual and expected days-to-automate over finished smoke automation tasks.
// Issues that are not done, have no due date, or never entered progress are logged and excluded from both sums.
func (u *Usecases) AutomationLeadTime(ctx context.Context) (LeadTime, error) {
	issues, err := u.jira.GetAllIssues(ctx, leadTimeJQL)
	if err != nil {
		return LeadTime{}, err
	}

	var lt LeadTime
	for _, issue := range issues {
		actualDays, err := DueDateStatusChangeDiff(issue, jira.StatusCategoryDone)
		if err != nil {
			log.Warn("Skipping issue for lead time", "key", issue.Key, "reason", err)
			continue
		}
		dueDate, _ := jira.ParseTime(*issue.Fields.DueDate)

		changelog, err := u.IssueChangelog(ctx, issue.Key, "status")
		if err != nil {
			return LeadTime{}, fmt.Errorf("error fetching changelog for %s: %w", issue.Key, err)
		}
		started, ok := inProgressSince(changelog)
		if !ok {
			log.Warn("Skipping issue for lead time", "key", issue.Key, "reason", "no transition to in progress")
			continue
		}

		lt.ActualDays += actualDays
		lt.ExpectedDays += daysBetween(started, dueDate) + 1
		lt.Issues++
	}
	log.Info("Computed automation lead time", "issues", lt.Issues, "actual_days", lt.ActualDays, "expected_days", lt.ExpectedDays)
	return lt, nil
}

// AutomationTasksWithoutRequiredLabels reports automation tasks of actual smoke tests that lack a required label.
func (u *Usecases) AutomationTasksWithoutRequiredLabels(ctx context.Context) ([]LabelViolation, error) {
	tests, err := u.qase.GetAllTestCases(ctx, qase.Filter{Type: qase.TypeSmoke, Status: qase.StatusActual})
	if err != nil {
		return nil, err
	}
	tasks, err := u.AutomationTasks(ctx, tests)
	if err != nil {
		return nil, err
	}

	testByKey := make(map[string]int)
	for _, test := range tests {
		if key, ok := automationTaskKey(test); ok {
			testByKey[key] = test.ID
		}
	}

	violations := []LabelViolation{}
	for _, task := range tasks {
		var missing []string
		for _, label := range requiredTaskLabels {
			if !slices.Contains(task.Fields.Labels, label) {
				missing = append(missing, label)
			}
		}
		if len(missing) == 0 {
			continue
		}
		log.Warn("Automation task is missing required labels", "task", task.Key, "labels", task.Fields.Labels, "missing", missing)
		violations = append(violations, LabelViolation{
			TaskKey: task.Key,
			TestID:  testByKey[task.Key],
			Labels:  task.Fields.Labels,
			Missing: missing,
		})
	}
	return violations, nil
}

// CreateMissingAutomationTasks opens a Jira automation task for every manual smoke test without one
// and writes the task link back to the test case. In dry run mode nothing is written.
func (u *Usecases) CreateMissingAutomationTasks(ctx context.Context, dryRun bool) ([]CreatedTask, error) {
	if u.opts.JiraProjectKey == "" {
		return nil, ErrNoProjectKey
	}
	tests, err := u.SmokeTests(ctx, false)
	if err != nil {
		return nil, err
	}

	created := []CreatedTask{}
	for _, test := range u.TestsWithoutAutomationTask(tests) {
		if dryRun {
			log.Info("[Dry Run] Would have created automation task", "test", u.testURL(test.ID))
			created = append(created, CreatedTask{TestID: test.ID, DryRun: true})
			continue
		}

		issue, err := u.jira.CreateIssue(ctx, jira.CreateIssueParams{
			ProjectKey:  u.opts.JiraProjectKey,
			IssueType:   jira.IssueTypeTask,
			Summary:     "Automate smoke test: " + test.Title,
			Description: u.testURL(test.ID),
			Labels:      requiredTaskLabels,
			CustomFields: map[jira.CustomField]any{
				jira.CustomFieldTestCaseKey: fmt.Sprintf("%s-%d", u.opts.QaseProjectCode, test.ID),
			},
		})
		if err != nil {
			return created, fmt.Errorf("error creating automation task for test %d: %w", test.ID, err)
		}

		taskURL := u.jira.BrowseURL(issue.Key)
		if err := u.qase.UpdateTestCase(ctx, test.ID, map[qase.CustomField]string{qase.CustomFieldAutomationTask: taskURL}); err != nil {
			return created, fmt.Errorf("error linking test %d to %s: %w", test.ID, issue.Key, err)
		}
		log.Info("Created automation task", "test", u.testURL(test.ID), "task", taskURL)
		created = append(created, CreatedTask{TestID: test.ID, TaskKey: issue.Key, TaskURL: taskURL})
	}
	return created, nil
}

// OpenPullRequests counts open pull requests against the configured base branch.
func (u *Usecases) OpenPullRequests(ctx context.Context) (int, error) {
	pulls, err := u.github.ListPullRequests(ctx, github.PullFilter{State: "open", Base: u.opts.BaseBranch})
	if err != nil {
		return 0, err
	}
	return len(pulls), nil
}

// CommitsSince counts commits by the configured author made in the trailing window.
func (u *Usecases) CommitsSince(ctx context.Context, window time.Duration) (int, error) {
	now := u.now()
	commits, err := u.github.ListCommits(ctx, github.CommitFilter{
		Since:  now.Add(-window),
		Until:  now,
		Author: u.opts.CommitAuthor,
	})
	if err != nil {
		return 0, err
	}
	return len(commits), nil
}

func (u *Usecases) testURL(id int) string {
	return u.qase.TestCaseURL(u.opts.QaseAppURL, id)
}

// inProgressSince returns the time of the first transition into the in progress status.
func inProgressSince(changelog []jira.ChangelogEntry) (time.Time, bool) {
	for _, entry := range changelog {
		for _, item := range entry.Items {
			if item.Field != "status" || item.To != jira.StatusInProgress {
				continue
			}
			created, err := jira.ParseTime(entry.Created)
			if err != nil {
				log.Warn("Unparsable changelog timestamp", "id", entry.ID, "created", entry.Created)
				continue
			}
			return created, true
		}
	}
	return time.Time{}, false
}

// automationTaskKey resolves the Jira key linked from a test. Blank links count as no task.
func automationTaskKey(test qase.TestCase) (string, bool) {
	taskURL := strings.TrimSpace(qase.CustomFieldAutomationTask.Value(test))
	if taskURL == "" {
		return "", false
	}
	key := jira.KeyFromURL(taskURL)
	return key, key != ""
}

// daysBetween counts calendar days from a to b, ignoring the time of day.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
