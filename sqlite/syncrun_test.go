package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/jarlesteinnes/docsync"
	"github.com/jarlesteinnes/docsync/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSyncRunService_CreateSyncRun(t *testing.T) {
	t.Parallel()

	t.Run("creates run with generated ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSyncRunService(db)
		ctx := context.Background()

		started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		run := &docsync.SyncRun{
			StartedAt:      started,
			FinishedAt:     started.Add(3 * time.Second),
			TotalDocuments: 14,
			TotalSize:      1 << 20,
			Committed:      true,
			Revision:       "0a1b2c3d",
			Notified:       true,
		}

		err := svc.CreateSyncRun(ctx, run)
		require.NoError(t, err)

		assert.NotEmpty(t, run.ID, "ID should be generated")
	})

	t.Run("returns error for invalid run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSyncRunService(db)
		ctx := context.Background()

		run := &docsync.SyncRun{} // missing start time

		err := svc.CreateSyncRun(ctx, run)
		require.Error(t, err)
		assert.Equal(t, docsync.EINVALID, docsync.ErrorCode(err))
	})
}

func TestSyncRunService_FindSyncRuns(t *testing.T) {
	t.Parallel()

	createRun := func(t *testing.T, svc *sqlite.SyncRunService, started time.Time, committed bool) *docsync.SyncRun {
		t.Helper()
		run := &docsync.SyncRun{
			StartedAt:  started,
			FinishedAt: started.Add(time.Second),
			Committed:  committed,
		}
		require.NoError(t, svc.CreateSyncRun(context.Background(), run))
		return run
	}

	t.Run("returns runs newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSyncRunService(db)
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		first := createRun(t, svc, base, true)
		second := createRun(t, svc, base.Add(time.Minute), false)
		third := createRun(t, svc, base.Add(2*time.Minute), true)

		runs, err := svc.FindSyncRuns(context.Background(), docsync.SyncRunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, third.ID, runs[0].ID)
		assert.Equal(t, second.ID, runs[1].ID)
		assert.Equal(t, first.ID, runs[2].ID)
	})

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSyncRunService(db)
		ctx := context.Background()

		started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		want := &docsync.SyncRun{
			StartedAt:      started,
			FinishedAt:     started.Add(2 * time.Second),
			TotalDocuments: 7,
			TotalSize:      4096,
			Committed:      true,
			Revision:       "deadbeef",
			Notified:       true,
			Error:          "notification skipped",
		}
		require.NoError(t, svc.CreateSyncRun(ctx, want))

		runs, err := svc.FindSyncRuns(ctx, docsync.SyncRunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 1)

		got := runs[0]
		assert.Equal(t, want.ID, got.ID)
		assert.True(t, got.StartedAt.Equal(want.StartedAt))
		assert.True(t, got.FinishedAt.Equal(want.FinishedAt))
		assert.Equal(t, want.TotalDocuments, got.TotalDocuments)
		assert.Equal(t, want.TotalSize, got.TotalSize)
		assert.Equal(t, want.Committed, got.Committed)
		assert.Equal(t, want.Revision, got.Revision)
		assert.Equal(t, want.Notified, got.Notified)
		assert.Equal(t, want.Error, got.Error)
	})

	t.Run("filters by committed", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSyncRunService(db)
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		committed := createRun(t, svc, base, true)
		createRun(t, svc, base.Add(time.Minute), false)

		yes := true
		runs, err := svc.FindSyncRuns(context.Background(), docsync.SyncRunFilter{Committed: &yes})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, committed.ID, runs[0].ID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSyncRunService(db)
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		for i := 0; i < 5; i++ {
			createRun(t, svc, base.Add(time.Duration(i)*time.Minute), true)
		}

		runs, err := svc.FindSyncRuns(context.Background(), docsync.SyncRunFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("returns empty result for empty history", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSyncRunService(db)

		runs, err := svc.FindSyncRuns(context.Background(), docsync.SyncRunFilter{})
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
