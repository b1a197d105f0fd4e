package docsync

import (
	"context"
	"time"
)

// Repository is the narrow version-control surface the publish step needs:
// stage everything, count what is staged, commit, push. Keeping it this
// small lets tests substitute a fake without external tooling.
type Repository interface {
	// StageAll stages every change in the working tree, including
	// untracked files.
	StageAll(ctx context.Context) error

	// Staged reports how many paths are currently staged for commit.
	Staged(ctx context.Context) (int, error)

	// Commit records the staged changes under the given message and
	// returns the new revision.
	Commit(ctx context.Context, message string) (string, error)

	// Push sends local commits to the named branch on the named remote.
	Push(ctx context.Context, remote, branch string) error
}

// CommitMessage builds the publish commit message from the configured
// prefix and a local timestamp.
func CommitMessage(prefix string, now time.Time) string {
	return prefix + " - " + now.Format("2006-01-02 15:04")
}
