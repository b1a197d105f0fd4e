package mock

import (
	"context"

	"github.com/jarlesteinnes/docsync"
)

var _ docsync.Repository = (*Repository)(nil)

// Repository is a mock implementation of docsync.Repository.
type Repository struct {
	StageAllFn func(ctx context.Context) error
	StagedFn   func(ctx context.Context) (int, error)
	CommitFn   func(ctx context.Context, message string) (string, error)
	PushFn     func(ctx context.Context, remote, branch string) error
}

func (r *Repository) StageAll(ctx context.Context) error {
	return r.StageAllFn(ctx)
}

func (r *Repository) Staged(ctx context.Context) (int, error) {
	return r.StagedFn(ctx)
}

func (r *Repository) Commit(ctx context.Context, message string) (string, error) {
	return r.CommitFn(ctx, message)
}

func (r *Repository) Push(ctx context.Context, remote, branch string) error {
	return r.PushFn(ctx, remote, branch)
}
