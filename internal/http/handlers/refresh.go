package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/qa-pulse/internal/collector"
)

// RefreshHandler runs a refresh cycle synchronously and returns its snapshot.
func RefreshHandler(refresher collector.Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received manual refresh request")
		snapshot := refresher.Refresh(r.Context())
		writeJSON(w, http.StatusOK, snapshot)
	}
}

// SnapshotHandler returns the snapshot of the last refresh cycle.
func SnapshotHandler(refresher collector.Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := refresher.LastSnapshot()
		if !ok {
			http.Error(w, "No refresh has completed yet", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}
