// Package gogit provides a go-git based implementation of the docsync
// publishing repository.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/jarlesteinnes/docsync"
)

// Compile-time interface verification.
var _ docsync.Repository = (*Repository)(nil)

// Repository implements docsync.Repository against a git worktree on disk.
type Repository struct {
	path string
	repo *git.Repository
	wt   *git.Worktree

	// AuthorName and AuthorEmail identify the author and committer of
	// commits created through this repository.
	AuthorName  string
	AuthorEmail string
}

// NewRepository creates a new Repository rooted at path.
func NewRepository(path string) *Repository {
	return &Repository{
		path:        path,
		AuthorName:  "docsync",
		AuthorEmail: "docsync@localhost",
	}
}

// Open opens the git repository at the configured path. It must be called
// before any other method. Opening a directory that is not a git repository
// returns EPRECONDITION.
func (r *Repository) Open() error {
	repo, err := git.PlainOpen(r.path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return docsync.Errorf(docsync.EPRECONDITION, "%s is not a git repository", r.path)
	}
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	r.repo = repo
	r.wt = wt
	return nil
}

// StageAll stages every modified, deleted and untracked file in the worktree.
func (r *Repository) StageAll(ctx context.Context) error {
	if err := r.wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Staged reports the number of files with changes staged for the next commit.
func (r *Repository) Staged(ctx context.Context) (int, error) {
	status, err := r.wt.Status()
	if err != nil {
		return 0, fmt.Errorf("failed to get worktree status: %w", err)
	}

	count := 0
	for _, fileStatus := range status {
		if fileStatus.Staging != git.Untracked && fileStatus.Staging != git.Unmodified {
			count++
		}
	}

	return count, nil
}

// Commit records the staged changes and returns the hash of the new commit.
func (r *Repository) Commit(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", docsync.Errorf(docsync.EINVALID, "commit message is required")
	}

	hash, err := r.wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  r.AuthorName,
			Email: r.AuthorEmail,
			When:  time.Now(),
		},
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		return "", docsync.Errorf(docsync.EINVALID, "no staged changes to commit")
	}
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	return hash.String(), nil
}

// Push publishes the branch to the remote. A remote that is already up to
// date is not an error.
func (r *Repository) Push(ctx context.Context, remote, branch string) error {
	refSpec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))

	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{refSpec},
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if errors.Is(err, git.ErrRemoteNotFound) {
		return docsync.Errorf(docsync.EPRECONDITION, "remote %q is not configured", remote)
	}
	if err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}

	return nil
}
