// Package sync provides document sync orchestration.
// It coordinates scanning, catalog assembly, publishing, and change
// notification.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jarlesteinnes/docsync"
)

// Syncer orchestrates one sync of a document repository, from scanning the
// category directories through publishing and notification.
type Syncer struct {
	Scanner    docsync.Scanner
	Catalogs   docsync.CatalogStore
	Repository docsync.Repository
	Notifier   docsync.NotificationSink
	Webhooks   docsync.WebhookStore

	// Sitemaps, when set, receives the catalog after it is written.
	Sitemaps docsync.SitemapWriter

	// SyncRuns, when set, records every run in the history store.
	SyncRuns docsync.SyncRunService

	Config *docsync.Config

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a sync operation.
type Result struct {
	Catalog   *docsync.Catalog
	Staged    int
	Committed bool
	Revision  string
	Notified  bool
}

// ProgressEvent reports progress during a sync operation.
type ProgressEvent struct {
	Type     ProgressType
	Category string
	Count    int
	Revision string
	Error    error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressScanned ProgressType = iota
	ProgressCatalogWritten
	ProgressNoChanges
	ProgressCommitted
	ProgressPushed
	ProgressNotified
	ProgressWebhookWritten
	ProgressWarning
)

// ProgressFunc is a callback for reporting sync progress.
type ProgressFunc func(event ProgressEvent)

// DocumentID derives the stable identifier for a document from its category
// and filename, so re-scans of an unchanged file reproduce the same
// identifier.
func DocumentID(category, filename string) string {
	h := xxhash.Sum64String(category + "_" + filename)
	return fmt.Sprintf("%016x", h)[:12]
}

// BuildCatalog scans every configured category in order and assembles the
// catalog. Statistics accumulate during the build; every configured
// category appears in the result, empty ones with an empty document list.
func (s *Syncer) BuildCatalog(ctx context.Context) (*docsync.Catalog, error) {
	cfg := s.Config

	c := &docsync.Catalog{
		LastUpdated:   s.now().UTC().Format(docsync.TimestampLayout),
		BaseURL:       cfg.BaseURL,
		Version:       cfg.Version,
		Categories:    make(map[string]string, len(cfg.Categories)),
		CategoryIcons: make(map[string]string, len(cfg.Categories)),
		Documents:     make(map[string][]*docsync.DocumentRecord, len(cfg.Categories)),
		Statistics: docsync.Statistics{
			CategoryCounts: make(map[string]int, len(cfg.Categories)),
		},
	}

	for _, cat := range cfg.Categories {
		files, err := s.Scanner.ScanCategory(ctx, cat.Name)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", cat.Name, err)
		}

		records := make([]*docsync.DocumentRecord, 0, len(files))
		for _, f := range files {
			records = append(records, newDocumentRecord(cfg, cat, f))
		}

		c.Categories[cat.Name] = cat.DisplayName
		c.CategoryIcons[cat.Name] = cat.Icon
		c.Documents[cat.Name] = records
		c.Statistics.CategoryCounts[cat.Name] = len(records)
		c.Statistics.TotalDocuments += len(records)
		for _, r := range records {
			c.Statistics.TotalSize += r.Size
		}
	}

	return c, nil
}

// Run executes the full sync pipeline: build and write the catalog, stage
// and publish the changes, then notify the consumer application. The
// progress callback, if provided, receives events as the run proceeds.
//
// A run with nothing staged short-circuits after the catalog write and is
// a success. Sitemap, notification, webhook and history failures are
// reported as warnings and never fail the run.
func (s *Syncer) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	started := s.now()
	result, err := s.run(ctx, progress)
	s.recordRun(ctx, started, result, err, progress)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Syncer) run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	cfg := s.Config

	catalog, err := s.BuildCatalog(ctx)
	if err != nil {
		return nil, err
	}
	result := &Result{Catalog: catalog}

	if progress != nil {
		for _, cat := range cfg.Categories {
			progress(ProgressEvent{
				Type:     ProgressScanned,
				Category: cat.Name,
				Count:    catalog.Statistics.CategoryCounts[cat.Name],
			})
		}
	}

	if err := s.Catalogs.WriteCatalog(ctx, catalog); err != nil {
		return result, fmt.Errorf("writing catalog: %w", err)
	}
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressCatalogWritten,
			Count: catalog.Statistics.TotalDocuments,
		})
	}

	if s.Sitemaps != nil {
		if err := s.Sitemaps.WriteSitemap(ctx, catalog); err != nil && progress != nil {
			progress(ProgressEvent{Type: ProgressWarning, Error: fmt.Errorf("writing sitemap: %w", err)})
		}
	}

	if err := s.Repository.StageAll(ctx); err != nil {
		return result, fmt.Errorf("staging changes: %w", err)
	}
	staged, err := s.Repository.Staged(ctx)
	if err != nil {
		return result, fmt.Errorf("counting staged changes: %w", err)
	}
	result.Staged = staged

	if staged == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressNoChanges})
		}
		return result, nil
	}

	revision, err := s.Repository.Commit(ctx, docsync.CommitMessage(cfg.CommitPrefix, s.now()))
	if err != nil {
		return result, fmt.Errorf("committing: %w", err)
	}
	result.Committed = true
	result.Revision = revision
	if progress != nil {
		progress(ProgressEvent{Type: ProgressCommitted, Revision: revision})
	}

	pushCtx := ctx
	if cfg.PushTimeout > 0 {
		var cancel context.CancelFunc
		pushCtx, cancel = context.WithTimeout(ctx, cfg.PushTimeout)
		defer cancel()
	}
	if err := s.Repository.Push(pushCtx, cfg.Remote, cfg.Branch); err != nil {
		return result, fmt.Errorf("pushing to %s/%s: %w", cfg.Remote, cfg.Branch, err)
	}
	if progress != nil {
		progress(ProgressEvent{Type: ProgressPushed})
	}

	notification := docsync.NewNotification(cfg, catalog, s.now())
	if err := s.Notifier.Notify(ctx, notification); err != nil {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressWarning, Error: fmt.Errorf("notifying: %w", err)})
		}
	} else {
		result.Notified = true
		if progress != nil {
			progress(ProgressEvent{Type: ProgressNotified})
		}
	}

	if err := s.Webhooks.WriteWebhookConfig(ctx, docsync.NewWebhookConfig(cfg)); err != nil {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressWarning, Error: fmt.Errorf("writing webhook config: %w", err)})
		}
	} else if progress != nil {
		progress(ProgressEvent{Type: ProgressWebhookWritten})
	}

	return result, nil
}

// recordRun appends the run to the history store. Failed runs are recorded
// with whatever the run accomplished before it failed.
func (s *Syncer) recordRun(ctx context.Context, started time.Time, result *Result, runErr error, progress ProgressFunc) {
	if s.SyncRuns == nil {
		return
	}

	run := &docsync.SyncRun{
		StartedAt:  started,
		FinishedAt: s.now(),
	}
	if result != nil {
		if result.Catalog != nil {
			run.TotalDocuments = result.Catalog.Statistics.TotalDocuments
			run.TotalSize = result.Catalog.Statistics.TotalSize
		}
		run.Committed = result.Committed
		run.Revision = result.Revision
		run.Notified = result.Notified
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := s.SyncRuns.CreateSyncRun(ctx, run); err != nil && progress != nil {
		progress(ProgressEvent{Type: ProgressWarning, Error: fmt.Errorf("recording run: %w", err)})
	}
}

// newDocumentRecord builds the catalog record for one scanned file. A file
// whose metadata read failed keeps its zero size and empty modified time.
func newDocumentRecord(cfg *docsync.Config, cat docsync.Category, f *docsync.ScannedFile) *docsync.DocumentRecord {
	rec := &docsync.DocumentRecord{
		ID:                  DocumentID(cat.Name, f.Filename),
		Name:                docsync.DocumentName(f.Filename),
		Filename:            f.Filename,
		URL:                 docsync.DocumentURL(cfg.BaseURL, cat.Name, f.Filename),
		Category:            cat.Name,
		CategoryDisplayName: cat.DisplayName,
		Icon:                cat.Icon,
		Size:                f.Size,
		Hash:                f.Hash,
	}
	if !f.Modified.IsZero() {
		rec.Modified = f.Modified.UTC().Format(docsync.TimestampLayout)
	}
	return rec
}

func (s *Syncer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
