package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port            string
	LogLevel        string
	RefreshInterval time.Duration
	DigestCron      string
	Jira            JiraConfig
	Qase            QaseConfig
	GitHub          GitHubConfig
	Slack           SlackConfig
	PubSub          PubSubConfig
}

type JiraConfig struct {
	URL        string
	Email      string
	APIToken   string
	ProjectKey string
}

type QaseConfig struct {
	URL         string
	AppURL      string
	APIToken    string
	ProjectCode string
}

type GitHubConfig struct {
	Token      string
	Repo       string
	BaseURL    string
	BaseBranch string
	Author     string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type PubSubConfig struct {
	ProjectID string
	Topic     string
}

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// Enabled reports whether both a token and a channel are configured.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

// Enabled reports whether both a project and a topic are configured.
func (c PubSubConfig) Enabled() bool {
	return c.ProjectID != "" && c.Topic != ""
}

const (
	defaultPort            = "8000"
	defaultLogLevel        = "info"
	defaultRefreshInterval = 600 * time.Second
	defaultDigestCron      = "0 10 * * MON"
	defaultQaseURL         = "https://api.qase.io"
	defaultQaseAppURL      = "https://app.qase.io"
	defaultBaseBranch      = "main"
)
