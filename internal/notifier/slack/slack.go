package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/metrics"
	"github.com/mauv0809/qa-pulse/internal/notifier"
	internalslack "github.com/mauv0809/qa-pulse/internal/slack"
	"github.com/mauv0809/qa-pulse/internal/usecases"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	browse    internalslack.BrowseFunc
}

// NewNotifier creates a new Notifier. browse builds Jira links for audit messages.
func NewNotifier(token, channelID string, metrics metrics.Metrics, browse internalslack.BrowseFunc) *Notifier {
	api := slack.New(token)
	return NewNotifierWithAPI(api, channelID, metrics, browse)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics, browse internalslack.BrowseFunc) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		browse:    browse,
	}
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendDigest(ctx context.Context, snapshot collector.Snapshot, dryRun bool) (string, error) {
	msg := internalslack.FormatDigest(snapshot)
	_, ts, err := s.sendMessage(ctx, msg, dryRun)
	return ts, err
}

func (s *Notifier) SendLabelAudit(ctx context.Context, violations []usecases.LabelViolation, dryRun bool) (string, error) {
	msg := internalslack.FormatLabelAudit(violations, s.browse)
	_, ts, err := s.sendMessage(ctx, msg, dryRun)
	return ts, err
}

func (s *Notifier) SendCreatedTasks(ctx context.Context, tasks []usecases.CreatedTask, dryRun bool) (string, error) {
	msg := internalslack.FormatCreatedTasks(tasks)
	_, ts, err := s.sendMessage(ctx, msg, dryRun)
	return ts, err
}
