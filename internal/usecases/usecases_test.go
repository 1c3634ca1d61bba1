package usecases

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/github"
	"github.com/mauv0809/qa-pulse/internal/jira"
	"github.com/mauv0809/qa-pulse/internal/qase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jiraURL = "https://jira.example"

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func field(f qase.CustomField, value string) qase.CustomFieldValue {
	return qase.CustomFieldValue{ID: int(f), Value: value}
}

func testCase(id int, fields ...qase.CustomFieldValue) qase.TestCase {
	return qase.TestCase{ID: id, Title: "Test", CustomFields: fields}
}

func task(key, status string) jira.Issue {
	return jira.Issue{Key: key, Fields: jira.IssueFields{Status: jira.Status{ID: status}}}
}

func doneIssue(key string, dueDate *string, changed string) jira.Issue {
	return jira.Issue{
		Key: key,
		Fields: jira.IssueFields{
			Status:                   jira.Status{ID: jira.StatusDone, StatusCategory: jira.StatusCategory{ID: jira.StatusCategoryDone}},
			DueDate:                  dueDate,
			StatusCategoryChangeDate: changed,
		},
	}
}

func ptr(s string) *string { return &s }

type fixture struct {
	qase   *qase.MockClient
	jira   *jira.MockClient
	github *github.MockClient
	uc     *Usecases
}

func newFixture() fixture {
	f := fixture{
		qase:   qase.NewMockClient("SMOKE"),
		jira:   jira.NewMockClient(jiraURL),
		github: github.NewMockClient(),
	}
	f.uc = New(f.qase, f.jira, f.github, Options{
		QaseAppURL:      "https://app.qase.io",
		QaseProjectCode: "SMOKE",
		JiraProjectKey:  "QA",
		BaseBranch:      "main",
		CommitAuthor:    "qa-bot",
	})
	return f
}

func TestTotalManualExecutionTime(t *testing.T) {
	t.Run("sums minutes into rounded hours and skips missing values", func(t *testing.T) {
		// Setup
		logs := captureLogs(t)
		f := newFixture()
		tests := []qase.TestCase{
			testCase(1, field(qase.CustomFieldManualExecutionTime, "60")),
			testCase(2, field(qase.CustomFieldManualExecutionTime, "120")),
			testCase(3),
		}

		// Execute
		hours := f.uc.TotalManualExecutionTime(tests)

		// Assert
		assert.Equal(t, 3.0, hours)
		assert.Equal(t, 1, strings.Count(logs.String(), "Test case has no manual execution time"))
		assert.Contains(t, logs.String(), "https://app.qase.io/case/SMOKE-3")
	})

	t.Run("rounds once at the end", func(t *testing.T) {
		f := newFixture()
		tests := []qase.TestCase{
			testCase(1, field(qase.CustomFieldManualExecutionTime, "10")),
			testCase(2, field(qase.CustomFieldManualExecutionTime, "10")),
			testCase(3, field(qase.CustomFieldManualExecutionTime, "10")),
		}

		assert.Equal(t, 0.5, f.uc.TotalManualExecutionTime(tests))
	})

	t.Run("skips unparsable values", func(t *testing.T) {
		logs := captureLogs(t)
		f := newFixture()
		tests := []qase.TestCase{
			testCase(1, field(qase.CustomFieldManualExecutionTime, "ten")),
			testCase(2, field(qase.CustomFieldManualExecutionTime, " 90 ")),
		}

		assert.Equal(t, 1.5, f.uc.TotalManualExecutionTime(tests))
		assert.Contains(t, logs.String(), "invalid manual execution time")
	})

	t.Run("empty input is zero", func(t *testing.T) {
		f := newFixture()
		assert.Equal(t, 0.0, f.uc.TotalManualExecutionTime(nil))
	})
}

func TestAutomationTasks(t *testing.T) {
	t.Run("resolves keys from task links in one query", func(t *testing.T) {
		// Setup
		f := newFixture()
		f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
			return []jira.Issue{task("ABC-1", jira.StatusInProgress), task("ABC-2", jira.StatusDone)}, nil
		}
		tests := []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1")),
			testCase(2, field(qase.CustomFieldAutomationTask, "")),
			testCase(3, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-2")),
			testCase(4, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1")),
		}

		// Execute
		tasks, err := f.uc.AutomationTasks(context.Background(), tests)

		// Assert
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
		assert.Equal(t, []string{"key in (ABC-1,ABC-2)"}, f.jira.GetAllIssuesCalls)
	})

	t.Run("blank links are skipped", func(t *testing.T) {
		logs := captureLogs(t)
		f := newFixture()
		f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
			return []jira.Issue{task("ABC-1", jira.StatusInProgress)}, nil
		}
		tests := []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "   ")),
			testCase(2, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1")),
			testCase(3, field(qase.CustomFieldAutomationTask, " / ")),
		}

		tasks, err := f.uc.AutomationTasks(context.Background(), tests)

		require.NoError(t, err)
		assert.Len(t, tasks, 1)
		assert.Equal(t, []string{"key in (ABC-1)"}, f.jira.GetAllIssuesCalls)
		assert.Contains(t, logs.String(), "No automation task for test case")
	})

	t.Run("only blank links issue no query", func(t *testing.T) {
		f := newFixture()

		tasks, err := f.uc.AutomationTasks(context.Background(), []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "   ")),
		})

		require.NoError(t, err)
		assert.Empty(t, tasks)
		assert.Empty(t, f.jira.GetAllIssuesCalls)
	})

	t.Run("no linked tasks issues no query", func(t *testing.T) {
		f := newFixture()

		tasks, err := f.uc.AutomationTasks(context.Background(), []qase.TestCase{testCase(1)})

		require.NoError(t, err)
		assert.Empty(t, tasks)
		assert.NotNil(t, tasks)
		assert.Empty(t, f.jira.GetAllIssuesCalls)
	})

	t.Run("propagates search errors", func(t *testing.T) {
		f := newFixture()
		f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
			return nil, errors.New("boom")
		}

		_, err := f.uc.AutomationTasks(context.Background(), []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1")),
		})

		assert.EqualError(t, err, "boom")
	})
}

func TestBlockedTests(t *testing.T) {
	t.Run("maps only blocked tasks back to their tests", func(t *testing.T) {
		// Setup
		f := newFixture()
		tests := []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1")),
			testCase(2, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-2")),
			testCase(3, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-3")),
		}
		f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
			return []jira.Issue{
				task("ABC-1", jira.StatusDevelopmentBlocked),
				task("ABC-2", jira.StatusInProgress),
				task("ABC-3", jira.StatusDevelopmentBlocked),
			}, nil
		}

		// Execute
		blocked, err := f.uc.BlockedTests(context.Background(), tests)

		// Assert
		require.NoError(t, err)
		require.Len(t, blocked, 2)
		assert.Equal(t, 1, blocked[0].ID)
		assert.Equal(t, 3, blocked[1].ID)
	})

	t.Run("requires an exact link match", func(t *testing.T) {
		logs := captureLogs(t)
		f := newFixture()
		tests := []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1/")),
		}
		f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
			return []jira.Issue{task("ABC-1", jira.StatusDevelopmentBlocked)}, nil
		}

		blocked, err := f.uc.BlockedTests(context.Background(), tests)

		require.NoError(t, err)
		assert.Empty(t, blocked)
		assert.Contains(t, logs.String(), "does not match any test case")
	})
}

func TestTestsWithoutAutomationTask(t *testing.T) {
	f := newFixture()
	tests := []qase.TestCase{
		testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1")),
		testCase(2, field(qase.CustomFieldAutomationTask, "")),
		testCase(3),
		testCase(4, field(qase.CustomFieldAutomationTask, "   ")),
	}

	without := f.uc.TestsWithoutAutomationTask(tests)

	require.Len(t, without, 3)
	assert.Equal(t, 2, without[0].ID)
	assert.Equal(t, 3, without[1].ID)
	assert.Equal(t, 4, without[2].ID)
}

func TestDueDateStatusChangeDiff(t *testing.T) {
	t.Run("counts calendar days between completion and due date", func(t *testing.T) {
		issue := doneIssue("ABC-1", ptr("2024-01-10"), "2024-01-03T23:30:00.000+0000")

		days, err := DueDateStatusChangeDiff(issue, jira.StatusCategoryDone)

		require.NoError(t, err)
		assert.Equal(t, 7, days)
	})

	t.Run("late completion is negative", func(t *testing.T) {
		issue := doneIssue("ABC-1", ptr("2024-01-10"), "2024-01-12T08:00:00.000+0000")

		days, err := DueDateStatusChangeDiff(issue, jira.StatusCategoryDone)

		require.NoError(t, err)
		assert.Equal(t, -2, days)
	})

	t.Run("rejects issues in another category", func(t *testing.T) {
		issue := doneIssue("ABC-1", ptr("2024-01-10"), "2024-01-03T10:00:00.000+0000")
		issue.Fields.Status.StatusCategory.ID = jira.StatusCategoryInProgress

		_, err := DueDateStatusChangeDiff(issue, jira.StatusCategoryDone)

		assert.ErrorIs(t, err, ErrStatusCategoryMismatch)
	})

	t.Run("rejects issues without a due date", func(t *testing.T) {
		issue := doneIssue("ABC-1", nil, "2024-01-03T10:00:00.000+0000")

		_, err := DueDateStatusChangeDiff(issue, jira.StatusCategoryDone)

		assert.ErrorIs(t, err, ErrNoDueDate)
	})
}

func TestIssueChangelog(t *testing.T) {
	f := newFixture()
	f.jira.GetAllChangelogFunc = func(key string) ([]jira.ChangelogEntry, error) {
		return []jira.ChangelogEntry{
			{ID: "1", Items: []jira.ChangeItem{{Field: "assignee"}}},
			{ID: "2", Items: []jira.ChangeItem{{Field: "labels"}, {Field: "status", To: jira.StatusInProgress}}},
			{ID: "3", Items: []jira.ChangeItem{{Field: "status", To: jira.StatusDone}}},
		}, nil
	}

	entries, err := f.uc.IssueChangelog(context.Background(), "ABC-1", "status")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "3", entries[1].ID)
}

func TestAutomationLeadTime(t *testing.T) {
	t.Run("sums actual and expected days over eligible issues", func(t *testing.T) {
		// Setup
		logs := captureLogs(t)
		f := newFixture()
		inProgress := doneIssue("ABC-4", ptr("2024-01-10"), "2024-01-03T10:00:00.000+0000")
		inProgress.Fields.Status.StatusCategory.ID = jira.StatusCategoryInProgress
		f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
			return []jira.Issue{
				doneIssue("ABC-1", ptr("2024-01-10"), "2024-01-03T10:00:00.000+0000"),
				doneIssue("ABC-2", nil, "2024-01-03T10:00:00.000+0000"),
				doneIssue("ABC-3", ptr("2024-01-10"), "2024-01-05T10:00:00.000+0000"),
				inProgress,
			}, nil
		}
		f.jira.GetAllChangelogFunc = func(key string) ([]jira.ChangelogEntry, error) {
			if key != "ABC-1" {
				return []jira.ChangelogEntry{
					{ID: "9", Created: "2024-01-04T10:00:00.000+0000", Items: []jira.ChangeItem{{Field: "status", To: jira.StatusDone}}},
				}, nil
			}
			return []jira.ChangelogEntry{
				{ID: "1", Created: "2024-01-02T09:15:00.000+0000", Items: []jira.ChangeItem{{Field: "status", To: jira.StatusInProgress}}},
				{ID: "2", Created: "2024-01-02T16:00:00.000+0000", Items: []jira.ChangeItem{{Field: "status", To: jira.StatusReview}}},
				{ID: "3", Created: "2024-01-03T10:00:00.000+0000", Items: []jira.ChangeItem{{Field: "status", To: jira.StatusDone}}},
			}, nil
		}

		// Execute
		lt, err := f.uc.AutomationLeadTime(context.Background())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, LeadTime{ActualDays: 7, ExpectedDays: 9, Issues: 1}, lt)
		assert.Equal(t, []string{leadTimeJQL}, f.jira.GetAllIssuesCalls)
		assert.Equal(t, []string{"ABC-1", "ABC-3"}, f.jira.GetAllChangelogCalls)
		assert.Equal(t, 3, strings.Count(logs.String(), "Skipping issue for lead time"))
	})

	t.Run("no issues is zero", func(t *testing.T) {
		f := newFixture()

		lt, err := f.uc.AutomationLeadTime(context.Background())

		require.NoError(t, err)
		assert.Equal(t, LeadTime{}, lt)
	})

	t.Run("changelog failure aborts", func(t *testing.T) {
		f := newFixture()
		f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
			return []jira.Issue{doneIssue("ABC-1", ptr("2024-01-10"), "2024-01-03T10:00:00.000+0000")}, nil
		}
		f.jira.GetAllChangelogFunc = func(key string) ([]jira.ChangelogEntry, error) {
			return nil, errors.New("timeout")
		}

		_, err := f.uc.AutomationLeadTime(context.Background())

		assert.ErrorContains(t, err, "ABC-1")
	})
}

func TestSmokeTestCount(t *testing.T) {
	// Setup
	f := newFixture()
	f.qase.GetAllTestCasesFunc = func(filter qase.Filter) ([]qase.TestCase, error) {
		size := 5
		if filter.Automation == qase.AutomationFilterAutomated {
			size = 12
		}
		return make([]qase.TestCase, size), nil
	}

	// Execute
	automated, err := f.uc.SmokeTestCount(context.Background(), true)
	require.NoError(t, err)
	manual, err := f.uc.SmokeTestCount(context.Background(), false)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 12, automated)
	assert.Equal(t, 5, manual)
	assert.Equal(t, []qase.Filter{
		{Type: qase.TypeSmoke, Status: qase.StatusActual, Automation: qase.AutomationFilterAutomated},
		{Type: qase.TypeSmoke, Status: qase.StatusActual, Automation: qase.AutomationFilterManual},
	}, f.qase.GetAllTestCasesCalls)
}

func TestBlockedManualSmoke(t *testing.T) {
	f := newFixture()
	f.qase.GetAllTestCasesFunc = func(filter qase.Filter) ([]qase.TestCase, error) {
		return []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1"), field(qase.CustomFieldManualExecutionTime, "30")),
			testCase(2, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-2"), field(qase.CustomFieldManualExecutionTime, "45")),
		}, nil
	}
	f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
		return []jira.Issue{task("ABC-1", jira.StatusDevelopmentBlocked), task("ABC-2", jira.StatusToDo)}, nil
	}

	count, hours, err := f.uc.BlockedManualSmoke(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0.5, hours)
}

func TestManualSmokeWithoutTask(t *testing.T) {
	f := newFixture()
	f.qase.GetAllTestCasesFunc = func(filter qase.Filter) ([]qase.TestCase, error) {
		return []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1"), field(qase.CustomFieldManualExecutionTime, "30")),
			testCase(2, field(qase.CustomFieldManualExecutionTime, "45")),
			testCase(3, field(qase.CustomFieldManualExecutionTime, "45")),
		}, nil
	}

	count, hours, err := f.uc.ManualSmokeWithoutTask(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1.5, hours)
	assert.Empty(t, f.jira.GetAllIssuesCalls)
}

func TestAutomationTasksWithoutRequiredLabels(t *testing.T) {
	// Setup
	f := newFixture()
	f.qase.GetAllTestCasesFunc = func(filter qase.Filter) ([]qase.TestCase, error) {
		return []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1")),
			testCase(2, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-2")),
			testCase(3),
			testCase(4, field(qase.CustomFieldAutomationTask, "  ")),
		}, nil
	}
	f.jira.GetAllIssuesFunc = func(jql string, fields []string) ([]jira.Issue, error) {
		complete := task("ABC-1", jira.StatusDone)
		complete.Fields.Labels = []string{"automation", "new_test", "smoke"}
		partial := task("ABC-2", jira.StatusDone)
		partial.Fields.Labels = []string{"smoke"}
		return []jira.Issue{complete, partial}, nil
	}

	// Execute
	violations, err := f.uc.AutomationTasksWithoutRequiredLabels(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, LabelViolation{
		TaskKey: "ABC-2",
		TestID:  2,
		Labels:  []string{"smoke"},
		Missing: []string{"automation", "new_test"},
	}, violations[0])
	assert.Equal(t, []qase.Filter{{Type: qase.TypeSmoke, Status: qase.StatusActual}}, f.qase.GetAllTestCasesCalls)
	assert.Equal(t, []string{"key in (ABC-1,ABC-2)"}, f.jira.GetAllIssuesCalls)
}

func TestCreateMissingAutomationTasks(t *testing.T) {
	manualTests := func(filter qase.Filter) ([]qase.TestCase, error) {
		return []qase.TestCase{
			testCase(1, field(qase.CustomFieldAutomationTask, "https://jira.example/browse/ABC-1")),
			{ID: 7, Title: "Login works"},
		}, nil
	}

	t.Run("dry run writes nothing", func(t *testing.T) {
		f := newFixture()
		f.qase.GetAllTestCasesFunc = manualTests

		created, err := f.uc.CreateMissingAutomationTasks(context.Background(), true)

		require.NoError(t, err)
		assert.Equal(t, []CreatedTask{{TestID: 7, DryRun: true}}, created)
		assert.Empty(t, f.jira.CreateIssueCalls)
		assert.Empty(t, f.qase.UpdateTestCaseCalls)
	})

	t.Run("creates the task and links it back", func(t *testing.T) {
		// Setup
		f := newFixture()
		f.qase.GetAllTestCasesFunc = manualTests
		f.jira.CreateIssueFunc = func(params jira.CreateIssueParams) (jira.CreatedIssue, error) {
			return jira.CreatedIssue{ID: "100", Key: "QA-42"}, nil
		}

		// Execute
		created, err := f.uc.CreateMissingAutomationTasks(context.Background(), false)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []CreatedTask{{TestID: 7, TaskKey: "QA-42", TaskURL: "https://jira.example/browse/QA-42"}}, created)
		require.Len(t, f.jira.CreateIssueCalls, 1)
		params := f.jira.CreateIssueCalls[0]
		assert.Equal(t, "QA", params.ProjectKey)
		assert.Equal(t, jira.IssueTypeTask, params.IssueType)
		assert.Equal(t, "Automate smoke test: Login works", params.Summary)
		assert.Equal(t, "https://app.qase.io/case/SMOKE-7", params.Description)
		assert.Equal(t, []string{"automation", "new_test", "smoke"}, params.Labels)
		assert.Equal(t, "SMOKE-7", params.CustomFields[jira.CustomFieldTestCaseKey])
		require.Len(t, f.qase.UpdateTestCaseCalls, 1)
		assert.Equal(t, 7, f.qase.UpdateTestCaseCalls[0].ID)
		assert.Equal(t, map[qase.CustomField]string{qase.CustomFieldAutomationTask: "https://jira.example/browse/QA-42"}, f.qase.UpdateTestCaseCalls[0].Fields)
	})

	t.Run("create failure stops before linking", func(t *testing.T) {
		f := newFixture()
		f.qase.GetAllTestCasesFunc = manualTests
		f.jira.CreateIssueFunc = func(params jira.CreateIssueParams) (jira.CreatedIssue, error) {
			return jira.CreatedIssue{}, errors.New("forbidden")
		}

		_, err := f.uc.CreateMissingAutomationTasks(context.Background(), false)

		assert.ErrorContains(t, err, "forbidden")
		assert.Empty(t, f.qase.UpdateTestCaseCalls)
	})

	t.Run("requires a project key", func(t *testing.T) {
		f := newFixture()
		f.uc.opts.JiraProjectKey = ""

		_, err := f.uc.CreateMissingAutomationTasks(context.Background(), true)

		assert.ErrorIs(t, err, ErrNoProjectKey)
		assert.Empty(t, f.qase.GetAllTestCasesCalls)
	})
}

func TestGitHubActivity(t *testing.T) {
	t.Run("open pull requests against the base branch", func(t *testing.T) {
		f := newFixture()
		f.github.ListPullRequestsFunc = func(filter github.PullFilter) ([]github.PullRequest, error) {
			return []github.PullRequest{{Number: 1}, {Number: 2}}, nil
		}

		count, err := f.uc.OpenPullRequests(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, []github.PullFilter{{State: "open", Base: "main"}}, f.github.ListPullRequestsCalls)
	})

	t.Run("commits in the trailing window", func(t *testing.T) {
		f := newFixture()
		now := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
		f.uc.now = func() time.Time { return now }
		f.github.ListCommitsFunc = func(filter github.CommitFilter) ([]github.Commit, error) {
			return []github.Commit{{SHA: "a"}, {SHA: "b"}, {SHA: "c"}}, nil
		}

		count, err := f.uc.CommitsSince(context.Background(), 7*24*time.Hour)

		require.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.Equal(t, []github.CommitFilter{{
			Since:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			Until:  now,
			Author: "qa-bot",
		}}, f.github.ListCommitsCalls)
	})
}

func TestDaysBetween_UsesEachTimestampsOwnDate(t *testing.T) {
	due, err := jira.ParseTime("2024-01-10")
	require.NoError(t, err)
	changed, err := jira.ParseTime("2024-01-03T00:30:00.000+0100")
	require.NoError(t, err)

	assert.Equal(t, 7, daysBetween(changed, due))
	assert.Equal(t, -7, daysBetween(due, changed))
}
