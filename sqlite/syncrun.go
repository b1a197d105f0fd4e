package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jarlesteinnes/docsync"
)

// Compile-time interface verification.
var _ docsync.SyncRunService = (*SyncRunService)(nil)

// SyncRunService implements docsync.SyncRunService using SQLite.
type SyncRunService struct {
	db *DB
}

// NewSyncRunService creates a new SyncRunService.
func NewSyncRunService(db *DB) *SyncRunService {
	return &SyncRunService{db: db}
}

// CreateSyncRun appends a run to the history.
func (s *SyncRunService) CreateSyncRun(ctx context.Context, run *docsync.SyncRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_runs (id, started_at, finished_at, total_documents, total_size, committed, revision, notified, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339),
		run.TotalDocuments, run.TotalSize, run.Committed, run.Revision, run.Notified, run.Error)

	return err
}

// FindSyncRuns retrieves runs matching the filter, newest first.
func (s *SyncRunService) FindSyncRuns(ctx context.Context, filter docsync.SyncRunFilter) ([]*docsync.SyncRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, started_at, finished_at, total_documents, total_size, committed, revision, notified, error FROM sync_runs WHERE 1=1")

	if filter.Committed != nil {
		query.WriteString(" AND committed = ?")
		args = append(args, *filter.Committed)
	}

	query.WriteString(" ORDER BY started_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*docsync.SyncRun
	for rows.Next() {
		var run docsync.SyncRun
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.TotalDocuments, &run.TotalSize,
			&run.Committed, &run.Revision, &run.Notified, &run.Error); err != nil {
			return nil, err
		}

		var parseErr error
		run.StartedAt, parseErr = parseRFC3339(startedAt, "started_at")
		if parseErr != nil {
			return nil, parseErr
		}
		run.FinishedAt, parseErr = parseRFC3339(finishedAt, "finished_at")
		if parseErr != nil {
			return nil, parseErr
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
