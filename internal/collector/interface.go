package collector

import "context"

// Refresher runs a refresh cycle and exposes its latest result.
type Refresher interface {
	Refresh(ctx context.Context) Snapshot
	LastSnapshot() (Snapshot, bool)
}

var _ Refresher = (*Collector)(nil)
