package slack

import "github.com/mauv0809/qa-pulse/internal/metrics"

// BrowseFunc builds the browser link of a Jira issue key.
type BrowseFunc func(key string) string

// gaugeTitles are the human readable names shown in the digest, in display order.
var gaugeTitles = []struct {
	Name  metrics.GaugeName
	Title string
}{
	{metrics.GaugeSmokeAutomated, "Automated smoke tests"},
	{metrics.GaugeSmokeManual, "Manual smoke tests"},
	{metrics.GaugeSmokeAutomatedHours, "Hours saved by automation"},
	{metrics.GaugeSmokeManualHours, "Manual smoke hours"},
	{metrics.GaugeBlockedManualSmoke, "Blocked automation"},
	{metrics.GaugeBlockedManualSmokeHours, "Blocked automation hours"},
	{metrics.GaugeManualSmokeWithoutTask, "Tests without automation task"},
	{metrics.GaugeManualSmokeWithoutTaskHours, "Hours without automation task"},
	{metrics.GaugeAutomationActualDays, "Lead time: actual days"},
	{metrics.GaugeAutomationExpectedDays, "Lead time: expected days"},
	{metrics.GaugeOpenPullRequests, "Open pull requests"},
	{metrics.GaugeRecentCommits, "Commits, last 7 days"},
}

// Slack allows at most 10 fields per section block.
const maxSectionFields = 10

// Longer lists are truncated with a "more" line.
const maxListedItems = 20
