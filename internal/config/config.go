package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// It exits the process if a required variable is missing or a value is invalid.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := FromLookup(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: invalid configuration: %v", err)
	}
	return cfg
}

// FromLookup builds the configuration from lookup. Every missing required
// variable and invalid value is reported in the returned error.
func FromLookup(lookup LookupFunc) (Config, error) {
	var errs []error

	// A helper function to get a required env var.
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		errs = append(errs, fmt.Errorf("required environment variable %s is not set", key))
		return ""
	}
	getEnvOr := func(key, fallback string) string {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return fallback
	}

	cfg := Config{
		Port:       getEnvOr("PORT", defaultPort),
		LogLevel:   getEnvOr("LOG_LEVEL", defaultLogLevel),
		DigestCron: getEnvOr("DIGEST_CRON", defaultDigestCron),
		Jira: JiraConfig{
			URL:        strings.TrimRight(getEnv("JIRA_URL"), "/"),
			Email:      getEnv("JIRA_EMAIL"),
			APIToken:   getEnv("JIRA_API_TOKEN"),
			ProjectKey: getEnvOr("JIRA_PROJECT_KEY", ""),
		},
		Qase: QaseConfig{
			URL:         strings.TrimRight(getEnvOr("QASE_URL", defaultQaseURL), "/"),
			AppURL:      strings.TrimRight(getEnvOr("QASE_APP_URL", defaultQaseAppURL), "/"),
			APIToken:    getEnv("QASE_API_TOKEN"),
			ProjectCode: getEnv("QASE_PROJECT_CODE"),
		},
		GitHub: GitHubConfig{
			Token:      getEnv("GITHUB_TOKEN"),
			Repo:       getEnv("GITHUB_REPO"),
			BaseURL:    getEnvOr("GITHUB_BASE_URL", ""),
			BaseBranch: getEnvOr("GITHUB_BASE_BRANCH", defaultBaseBranch),
			Author:     getEnvOr("GITHUB_AUTHOR", ""),
		},
		Slack: SlackConfig{
			Token:     getEnvOr("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvOr("SLACK_CHANNEL_ID", ""),
		},
		PubSub: PubSubConfig{
			ProjectID: getEnvOr("GCP_PROJECT", ""),
			Topic:     getEnvOr("PUBSUB_TOPIC", ""),
		},
	}

	interval, err := parseInterval(getEnvOr("REFRESH_INTERVAL", ""))
	if err != nil {
		errs = append(errs, err)
	}
	cfg.RefreshInterval = interval

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err))
	}
	if repo := cfg.GitHub.Repo; repo != "" && strings.Count(repo, "/") != 1 {
		errs = append(errs, fmt.Errorf("invalid GITHUB_REPO %q: expected owner/name", repo))
	}

	return cfg, errors.Join(errs...)
}

// parseInterval accepts a Go duration ("10m") or a whole number of seconds ("600").
func parseInterval(value string) (time.Duration, error) {
	if value == "" {
		return defaultRefreshInterval, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		seconds, convErr := strconv.Atoi(value)
		if convErr != nil {
			return 0, fmt.Errorf("invalid REFRESH_INTERVAL %q: %w", value, err)
		}
		d = time.Duration(seconds) * time.Second
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid REFRESH_INTERVAL %q: must be positive", value)
	}
	return d, nil
}
