package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/rest"
	"github.com/mauv0809/qa-pulse/internal/usecases"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// writeError maps an operation error to a status code: upstream failures are 502.
func writeError(w http.ResponseWriter, msg string, err error) {
	status := http.StatusInternalServerError
	var remoteErr *rest.RemoteRequestError
	switch {
	case errors.As(err, &remoteErr):
		status = http.StatusBadGateway
	case errors.Is(err, usecases.ErrNoProjectKey):
		status = http.StatusConflict
	}
	log.Error(msg, "error", err, "status", status)
	http.Error(w, msg+": "+err.Error(), status)
}
