package docsync

import (
	"context"
	"time"
)

// SyncRun records one sync invocation: what was cataloged, whether a commit
// was pushed, and whether the consumer was notified.
type SyncRun struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"startedAt"`
	FinishedAt     time.Time `json:"finishedAt"`
	TotalDocuments int       `json:"totalDocuments"`
	TotalSize      int64     `json:"totalSize"`
	Committed      bool      `json:"committed"`
	Revision       string    `json:"revision"`
	Notified       bool      `json:"notified"`
	Error          string    `json:"error"`
}

// Validate returns an error if the sync run contains invalid fields.
func (r *SyncRun) Validate() error {
	if r.StartedAt.IsZero() {
		return Errorf(EINVALID, "sync run start time required")
	}
	if r.FinishedAt.Before(r.StartedAt) {
		return Errorf(EINVALID, "sync run finished before it started")
	}
	return nil
}

// SyncRunService records and retrieves sync history.
type SyncRunService interface {
	// CreateSyncRun appends a run to the history.
	CreateSyncRun(ctx context.Context, run *SyncRun) error

	// FindSyncRuns retrieves runs matching the filter, newest first.
	FindSyncRuns(ctx context.Context, filter SyncRunFilter) ([]*SyncRun, error)
}

// SyncRunFilter represents a filter for FindSyncRuns.
type SyncRunFilter struct {
	Committed *bool `json:"committed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
