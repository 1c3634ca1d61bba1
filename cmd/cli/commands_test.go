package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformRequest(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
		if r.URL.Path == "/missing" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("OK!"))
	}))
	defer srv.Close()
	host = srv.URL
	t.Cleanup(func() { host = "http://localhost:8000"; dryRun = false; verbose = false })

	t.Run("create tasks in dry run", func(t *testing.T) {
		dryRun = true
		verbose = true

		require.NoError(t, createTasksCmd.RunE(createTasksCmd, nil))

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/automation-tasks", gotPath)
		assert.Equal(t, "dry_run=true&verbose=true", gotQuery)
	})

	t.Run("error status fails the command", func(t *testing.T) {
		verbose = false

		err := performRequest(http.MethodGet, "/missing", nil)

		assert.ErrorContains(t, err, "404")
		assert.Empty(t, gotQuery)
	})
}
