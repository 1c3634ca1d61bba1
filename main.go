package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/config"
	"github.com/mauv0809/qa-pulse/internal/github"
	server "github.com/mauv0809/qa-pulse/internal/http"
	"github.com/mauv0809/qa-pulse/internal/jira"
	"github.com/mauv0809/qa-pulse/internal/jobs"
	"github.com/mauv0809/qa-pulse/internal/metrics"
	"github.com/mauv0809/qa-pulse/internal/notifier"
	"github.com/mauv0809/qa-pulse/internal/notifier/slack"
	"github.com/mauv0809/qa-pulse/internal/pubsub"
	"github.com/mauv0809/qa-pulse/internal/qase"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	jiraClient := jira.NewClient(cfg.Jira.URL, cfg.Jira.Email, cfg.Jira.APIToken)
	qaseClient := qase.NewClient(cfg.Qase.URL, cfg.Qase.APIToken, cfg.Qase.ProjectCode)
	githubClient, err := github.NewClient(cfg.GitHub.Token, cfg.GitHub.Repo, cfg.GitHub.BaseURL)
	if err != nil {
		log.Fatalf("Failed to create GitHub client: %s", err)
	}

	uc := usecases.New(qaseClient, jiraClient, githubClient, usecases.Options{
		QaseAppURL:      cfg.Qase.AppURL,
		QaseProjectCode: cfg.Qase.ProjectCode,
		JiraProjectKey:  cfg.Jira.ProjectKey,
		BaseBranch:      cfg.GitHub.BaseBranch,
		CommitAuthor:    cfg.GitHub.Author,
	})

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var notif notifier.Notifier = notifier.Nop{}
	digestCron := ""
	if cfg.Slack.Enabled() {
		notif = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc, jiraClient.BrowseURL)
		digestCron = cfg.DigestCron
	} else {
		log.Info("Slack is not configured, digest disabled")
	}

	publisher := pubsub.NewNop()
	if cfg.PubSub.Enabled() {
		publisher, err = pubsub.New(context.Background(), cfg.PubSub.ProjectID, cfg.PubSub.Topic)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close pubsub client", "error", err)
		}
	}()

	coll := collector.New(uc, metricsSvc, publisher)
	scheduler, err := jobs.NewCron(jobs.Options{
		RefreshInterval: cfg.RefreshInterval,
		DigestCron:      digestCron,
	}, coll, uc, notif)
	if err != nil {
		log.Fatalf("Failed to initialize scheduler: %s", err)
	}

	s := server.NewServer(metricsHandler, coll, uc, notif)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()
	scheduler.Start()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}

		select {
		case <-scheduler.Stop().Done():
			log.Info("Scheduler stopped")
		case <-ctx.Done():
			log.Warn("Scheduler did not stop in time")
		}
	}

	log.Info("Server process shutting down")
}
