package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	auditLabelsCmd.Flags().Bool("notify", false, "Post the audit to Slack")
	createTasksCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the tasks that would be created without creating them")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(auditLabelsCmd)
	rootCmd.AddCommand(createTasksCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get the current gauge values in Prometheus format",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recompute every gauge now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/refresh", nil)
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show the result of the last refresh",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/snapshot", nil)
	},
}

var auditLabelsCmd = &cobra.Command{
	Use:   "audit-labels",
	Short: "List automation tasks missing the automation, new_test or smoke label",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		if notify, _ := cmd.Flags().GetBool("notify"); notify {
			query.Set("notify", "true")
		}
		return performRequest(http.MethodGet, "/audit/labels", query)
	},
}

var createTasksCmd = &cobra.Command{
	Use:   "create-tasks",
	Short: "Create Jira automation tasks for manual smoke tests without one",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		if dryRun {
			query.Set("dry_run", "true")
		}
		return performRequest(http.MethodPost, "/automation-tasks", query)
	},
}

func performRequest(method, endpoint string, query url.Values) error {
	if query == nil {
		query = url.Values{}
	}
	if verbose {
		query.Set("verbose", "true")
	}
	target := host + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}
