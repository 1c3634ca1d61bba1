package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/notifier"
	"github.com/mauv0809/qa-pulse/internal/usecases"
	"github.com/robfig/cron/v3"
)

// Options configures the schedule. An empty DigestCron disables the digest.
type Options struct {
	RefreshInterval time.Duration
	RefreshTimeout  time.Duration
	DigestCron      string
}

// Cron drives the periodic gauge refresh and the Slack digest.
type Cron struct {
	opts      Options
	refresher collector.Refresher
	auditor   usecases.Auditor
	notifier  notifier.Notifier
	c         *cron.Cron
	refresh   cron.Job
}

// cronLogger routes cron's own logging through the application logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

// NewCron schedules a refresh every opts.RefreshInterval and, when enabled, the digest on opts.DigestCron.
func NewCron(opts Options, refresher collector.Refresher, auditor usecases.Auditor, n notifier.Notifier) (*Cron, error) {
	if opts.RefreshInterval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", opts.RefreshInterval)
	}
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = max(opts.RefreshInterval, 5*time.Minute)
	}

	logger := cronLogger{}
	c := cron.New(
		cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor)),
		cron.WithLogger(logger),
	)
	cr := &Cron{opts: opts, refresher: refresher, auditor: auditor, notifier: n, c: c}

	cr.refresh = cron.NewChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)).Then(cron.FuncJob(cr.runRefresh))
	c.Schedule(cron.Every(opts.RefreshInterval), cr.refresh)

	if opts.DigestCron != "" {
		digest := cron.NewChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)).Then(cron.FuncJob(cr.runDigest))
		if _, err := c.AddJob(opts.DigestCron, digest); err != nil {
			return nil, fmt.Errorf("invalid digest schedule %q: %w", opts.DigestCron, err)
		}
	}
	return cr, nil
}

// Start runs one refresh immediately and starts the scheduler.
func (cr *Cron) Start() {
	log.Info("Starting scheduler", "refresh_interval", cr.opts.RefreshInterval, "digest", cr.opts.DigestCron)
	cr.c.Start()
	go cr.refresh.Run()
}

// Stop stops the scheduler. The returned context is done once running jobs have finished.
func (cr *Cron) Stop() context.Context {
	return cr.c.Stop()
}

func (cr *Cron) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), cr.opts.RefreshTimeout)
	defer cancel()
	cr.refresher.Refresh(ctx)
}

func (cr *Cron) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	snapshot, ok := cr.refresher.LastSnapshot()
	if !ok {
		log.Warn("cron: no snapshot yet, skipping digest")
		return
	}
	log.Info("cron: sending digest", "run", snapshot.RunID)
	if _, err := cr.notifier.SendDigest(ctx, snapshot, false); err != nil {
		log.Error("cron: digest failed", "error", err)
	}

	violations, err := cr.auditor.AutomationTasksWithoutRequiredLabels(ctx)
	if err != nil {
		log.Error("cron: label audit failed", "error", err)
		return
	}
	if len(violations) == 0 {
		return
	}
	if _, err := cr.notifier.SendLabelAudit(ctx, violations, false); err != nil {
		log.Error("cron: label audit notification failed", "error", err)
	}
}
