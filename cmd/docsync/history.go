package main

import (
	"fmt"

	"github.com/jarlesteinnes/docsync"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := docsync.SyncRunFilter{Limit: c.Limit}
	if c.Committed {
		committed := true
		filter.Committed = &committed
	}

	runs, err := deps.SyncRuns.FindSyncRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsync.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No sync runs recorded. Use 'docsync sync' to run one.")
		return nil
	}

	for _, run := range runs {
		status := "no changes"
		switch {
		case run.Error != "":
			status = "failed: " + run.Error
		case run.Committed:
			status = "committed " + shortRevision(run.Revision)
		}
		fmt.Fprintf(deps.Stdout, "%s  %d documents  %s\n",
			run.StartedAt.Format("2006-01-02 15:04"), run.TotalDocuments, status)
	}

	return nil
}
