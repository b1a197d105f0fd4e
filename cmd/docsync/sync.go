package main

import (
	"fmt"

	"github.com/jarlesteinnes/docsync"
	"github.com/jarlesteinnes/docsync/sync"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	progress := func(event sync.ProgressEvent) {
		switch event.Type {
		case sync.ProgressScanned:
			fmt.Fprintf(deps.Stdout, "  %s: %d documents\n", event.Category, event.Count)
		case sync.ProgressCatalogWritten:
			fmt.Fprintf(deps.Stdout, "Wrote %s (%d documents)\n", deps.Config.CatalogPath, event.Count)
		case sync.ProgressNoChanges:
			fmt.Fprintln(deps.Stdout, "No changes to publish")
		case sync.ProgressCommitted:
			fmt.Fprintf(deps.Stdout, "Committed %s\n", shortRevision(event.Revision))
		case sync.ProgressPushed:
			fmt.Fprintf(deps.Stdout, "Pushed to %s/%s\n", deps.Config.Remote, deps.Config.Branch)
		case sync.ProgressNotified:
			fmt.Fprintln(deps.Stdout, "Consumer notified")
		case sync.ProgressWebhookWritten:
			fmt.Fprintf(deps.Stdout, "Wrote %s\n", deps.Config.WebhookPath)
		case sync.ProgressWarning:
			fmt.Fprintf(deps.Stderr, "warning: %v\n", event.Error)
		}
	}

	result, err := deps.Syncer.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	// The no-changes short-circuit already reported itself.
	if result.Staged == 0 {
		return nil
	}

	stats := result.Catalog.Statistics
	fmt.Fprintf(deps.Stdout, "Synced %d documents (%s)\n",
		stats.TotalDocuments, sync.FormatBytes(stats.TotalSize))
	return nil
}

// shortRevision abbreviates a revision hash for display.
func shortRevision(revision string) string {
	if len(revision) > 8 {
		return revision[:8]
	}
	return revision
}
