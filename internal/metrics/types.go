package metrics

import "github.com/prometheus/client_golang/prometheus"

// GaugeName identifies one of the fixed QA gauges.
type GaugeName string

const (
	GaugeSmokeAutomated              GaugeName = "tests_automated_smoke"
	GaugeSmokeManual                 GaugeName = "tests_manual_smoke"
	GaugeSmokeAutomatedHours         GaugeName = "tests_automated_smoke_execution_hours"
	GaugeSmokeManualHours            GaugeName = "tests_manual_smoke_execution_hours"
	GaugeBlockedManualSmoke          GaugeName = "tests_blocked_manual_smoke"
	GaugeBlockedManualSmokeHours     GaugeName = "tests_blocked_manual_smoke_execution_hours"
	GaugeManualSmokeWithoutTask      GaugeName = "tests_manual_smoke_without_automation_task"
	GaugeManualSmokeWithoutTaskHours GaugeName = "tests_manual_smoke_without_automation_task_execution_hours"
	GaugeAutomationActualDays        GaugeName = "smoke_automation_actual_days_total"
	GaugeAutomationExpectedDays      GaugeName = "smoke_automation_expected_days_total"
	GaugeOpenPullRequests            GaugeName = "github_open_pull_requests"
	GaugeRecentCommits               GaugeName = "github_commits_last_7_days"
)

// GaugeDef describes a gauge before registration.
type GaugeDef struct {
	Name GaugeName
	Help string
}

// Gauges is the fixed set of QA gauges exposed on /metrics.
var Gauges = []GaugeDef{
	{GaugeSmokeAutomated, "Number of actual smoke tests that are automated."},
	{GaugeSmokeManual, "Number of actual smoke tests that are manual or to be automated."},
	{GaugeSmokeAutomatedHours, "Manual execution time, in hours, saved by automated smoke tests."},
	{GaugeSmokeManualHours, "Manual execution time, in hours, of manual smoke tests."},
	{GaugeBlockedManualSmoke, "Number of manual smoke tests whose automation task is blocked."},
	{GaugeBlockedManualSmokeHours, "Manual execution time, in hours, of smoke tests with blocked automation."},
	{GaugeManualSmokeWithoutTask, "Number of manual smoke tests without an automation task."},
	{GaugeManualSmokeWithoutTaskHours, "Manual execution time, in hours, of smoke tests without an automation task."},
	{GaugeAutomationActualDays, "Sum over finished smoke automation tasks of days between completion and due date."},
	{GaugeAutomationExpectedDays, "Sum over finished smoke automation tasks of days between start of work and due date."},
	{GaugeOpenPullRequests, "Number of open pull requests against the base branch."},
	{GaugeRecentCommits, "Number of commits by the configured author in the last 7 days."},
}

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Gauges             map[GaugeName]prometheus.Gauge
	RefreshRuns        prometheus.Counter
	RefreshFailures    *prometheus.CounterVec
	RefreshDuration    prometheus.Histogram
	LastRefreshSeconds prometheus.Gauge
	StartupTimeSeconds prometheus.Gauge
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
}
