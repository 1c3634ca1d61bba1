package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/usecases"
	"github.com/slack-go/slack"
)

// FormatDigest creates the Slack message summarizing a refresh snapshot using Block Kit.
func FormatDigest(snapshot collector.Snapshot) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "📊 QA pulse", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Gauges, two columns
	fields := make([]*slack.TextBlockObject, 0, len(gaugeTitles))
	for _, g := range gaugeTitles {
		value := "n/a"
		if v, ok := snapshot.Values[string(g.Name)]; ok {
			value = formatValue(v)
		}
		fields = append(fields, slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*%s*\n%s", g.Title, value), false, false))
	}
	for start := 0; start < len(fields); start += maxSectionFields {
		end := min(start+maxSectionFields, len(fields))
		blocks = append(blocks, slack.NewSectionBlock(nil, fields[start:end], nil))
	}

	if len(snapshot.Failed) > 0 {
		warning := fmt.Sprintf("⚠️ Failed to refresh: %s. Showing earlier values.", strings.Join(snapshot.Failed, ", "))
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", warning, false, false), nil, nil))
	}

	// Context
	contextText := fmt.Sprintf("Run %s at %s, took %s", snapshot.RunID, snapshot.StartedAt.Format("Monday 02 Jan, 15:04"), snapshot.Duration.Round(time.Millisecond))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("mrkdwn", contextText, false, false)))

	return slack.NewBlockMessage(blocks...)
}

// FormatLabelAudit creates the Slack message listing automation tasks with missing labels.
func FormatLabelAudit(violations []usecases.LabelViolation, browse BrowseFunc) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏷️ Automation tasks missing labels", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(violations) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", "All automation tasks are labelled. ✅", false, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(violations))
	for i, v := range violations {
		if i == maxListedItems {
			lines = append(lines, fmt.Sprintf("…and %d more", len(violations)-maxListedItems))
			break
		}
		lines = append(lines, fmt.Sprintf("• <%s|%s> is missing %s", browse(v.TaskKey), v.TaskKey, codeList(v.Missing)))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// FormatCreatedTasks creates the Slack message announcing newly opened automation tasks.
func FormatCreatedTasks(tasks []usecases.CreatedTask) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🤖 New automation tasks", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	lines := make([]string, 0, len(tasks))
	for i, task := range tasks {
		if i == maxListedItems {
			lines = append(lines, fmt.Sprintf("…and %d more", len(tasks)-maxListedItems))
			break
		}
		if task.TaskURL == "" {
			lines = append(lines, fmt.Sprintf("• test %d (not created, dry run)", task.TestID))
			continue
		}
		lines = append(lines, fmt.Sprintf("• <%s|%s> for test %d", task.TaskURL, task.TaskKey, task.TestID))
	}
	if len(lines) == 0 {
		lines = append(lines, "Every manual smoke test already has an automation task.")
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}
