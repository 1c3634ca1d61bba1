package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mauv0809/qa-pulse/internal/collector"
	"github.com/mauv0809/qa-pulse/internal/notifier"
	"github.com/mauv0809/qa-pulse/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	mu       sync.Mutex
	calls    int
	snapshot *collector.Snapshot
	entered  chan struct{}
	release  chan struct{}
}

func (f *fakeRefresher) Refresh(ctx context.Context) collector.Snapshot {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	return collector.Snapshot{RunID: "run"}
}

func (f *fakeRefresher) LastSnapshot() (collector.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.snapshot == nil {
		return collector.Snapshot{}, false
	}
	return *f.snapshot, true
}

func (f *fakeRefresher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestNewCron(t *testing.T) {
	t.Run("rejects a non-positive interval", func(t *testing.T) {
		_, err := NewCron(Options{}, &fakeRefresher{}, usecases.NewMockUsecases(), notifier.NewMock())
		assert.Error(t, err)
	})

	t.Run("rejects an invalid digest schedule", func(t *testing.T) {
		_, err := NewCron(Options{RefreshInterval: time.Minute, DigestCron: "every monday"}, &fakeRefresher{}, usecases.NewMockUsecases(), notifier.NewMock())
		assert.ErrorContains(t, err, "every monday")
	})

	t.Run("accepts the default digest schedule", func(t *testing.T) {
		cr, err := NewCron(Options{RefreshInterval: time.Minute, DigestCron: "0 10 * * MON"}, &fakeRefresher{}, usecases.NewMockUsecases(), notifier.NewMock())
		require.NoError(t, err)
		assert.Len(t, cr.c.Entries(), 2)
	})
}

func TestCron_StartRefreshesImmediately(t *testing.T) {
	refresher := &fakeRefresher{}
	cr, err := NewCron(Options{RefreshInterval: time.Hour}, refresher, usecases.NewMockUsecases(), notifier.NewMock())
	require.NoError(t, err)

	cr.Start()
	defer cr.Stop()

	assert.Eventually(t, func() bool { return refresher.Calls() == 1 }, time.Second, 10*time.Millisecond)
}

func TestCron_RefreshNeverOverlaps(t *testing.T) {
	refresher := &fakeRefresher{entered: make(chan struct{}), release: make(chan struct{})}
	cr, err := NewCron(Options{RefreshInterval: time.Hour}, refresher, usecases.NewMockUsecases(), notifier.NewMock())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		cr.refresh.Run()
		close(done)
	}()
	<-refresher.entered

	// Skipped while the first run is in flight.
	cr.refresh.Run()
	close(refresher.release)
	<-done

	assert.Equal(t, 1, refresher.Calls())
}

func TestCron_Digest(t *testing.T) {
	t.Run("sends the last snapshot and the label audit", func(t *testing.T) {
		refresher := &fakeRefresher{snapshot: &collector.Snapshot{RunID: "run-7"}}
		auditor := usecases.NewMockUsecases()
		auditor.LabelViolationsFunc = func() ([]usecases.LabelViolation, error) {
			return []usecases.LabelViolation{{TaskKey: "QA-1", Missing: []string{"smoke"}}}, nil
		}
		notif := notifier.NewMock()
		cr, err := NewCron(Options{RefreshInterval: time.Hour}, refresher, auditor, notif)
		require.NoError(t, err)

		cr.runDigest()

		require.Equal(t, 1, notif.DigestCount())
		assert.Equal(t, "run-7", notif.SendDigestCalls[0].RunID)
		require.Equal(t, 1, notif.LabelAuditCount())
		assert.Equal(t, "QA-1", notif.SendLabelAuditCalls[0][0].TaskKey)
	})

	t.Run("skips without a snapshot", func(t *testing.T) {
		notif := notifier.NewMock()
		cr, err := NewCron(Options{RefreshInterval: time.Hour}, &fakeRefresher{}, usecases.NewMockUsecases(), notif)
		require.NoError(t, err)

		cr.runDigest()

		assert.Equal(t, 0, notif.DigestCount())
		assert.Equal(t, 0, notif.LabelAuditCount())
	})

	t.Run("no audit message when every task is labelled", func(t *testing.T) {
		notif := notifier.NewMock()
		cr, err := NewCron(Options{RefreshInterval: time.Hour}, &fakeRefresher{snapshot: &collector.Snapshot{}}, usecases.NewMockUsecases(), notif)
		require.NoError(t, err)

		cr.runDigest()

		assert.Equal(t, 1, notif.DigestCount())
		assert.Equal(t, 0, notif.LabelAuditCount())
	})

	t.Run("audit failure does not panic", func(t *testing.T) {
		auditor := usecases.NewMockUsecases()
		auditor.LabelViolationsFunc = func() ([]usecases.LabelViolation, error) { return nil, errors.New("jira down") }
		notif := notifier.NewMock()
		cr, err := NewCron(Options{RefreshInterval: time.Hour}, &fakeRefresher{snapshot: &collector.Snapshot{}}, auditor, notif)
		require.NoError(t, err)

		cr.runDigest()

		assert.Equal(t, 0, notif.LabelAuditCount())
	})
}
