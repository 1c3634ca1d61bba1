package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/notifier"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

// LabelAuditHandler lists automation tasks missing required labels.
// With notify=true the result is also posted to Slack.
func LabelAuditHandler(auditor usecases.Auditor, n notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		violations, err := auditor.AutomationTasksWithoutRequiredLabels(r.Context())
		if err != nil {
			writeError(w, "Failed to audit automation task labels", err)
			return
		}
		log.Info("Audited automation task labels", "violations", len(violations))

		if r.URL.Query().Get("notify") == "true" {
			if _, err := n.SendLabelAudit(r.Context(), violations, IsDryRunFromContext(r)); err != nil {
				log.Error("Failed to send label audit", "error", err)
			}
		}
		writeJSON(w, http.StatusOK, violations)
	}
}

// CreateAutomationTasksHandler opens automation tasks for manual smoke tests without one.
// dry_run=true reports what would be created without writing anything.
func CreateAutomationTasksHandler(auditor usecases.Auditor, n notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := IsDryRunFromContext(r)
		log.Info("Creating missing automation tasks", "dry_run", isDryRun)

		created, err := auditor.CreateMissingAutomationTasks(r.Context(), isDryRun)
		if err != nil {
			writeError(w, "Failed to create automation tasks", err)
			return
		}

		if !isDryRun && len(created) > 0 {
			if _, err := n.SendCreatedTasks(r.Context(), created, false); err != nil {
				log.Error("Failed to announce created automation tasks", "error", err)
			}
		}
		writeJSON(w, http.StatusOK, created)
	}
}
