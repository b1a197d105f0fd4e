package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jarlesteinnes/docsync"
)

// Ensure LoggingRepository implements docsync.Repository.
var _ docsync.Repository = (*LoggingRepository)(nil)

// LoggingRepository wraps a Repository with logging for every publish step.
type LoggingRepository struct {
	next   docsync.Repository
	logger *slog.Logger
}

// NewLoggingRepository creates a new LoggingRepository.
func NewLoggingRepository(next docsync.Repository, logger *slog.Logger) *LoggingRepository {
	return &LoggingRepository{next: next, logger: logger}
}

// StageAll delegates to the wrapped repository and logs the operation.
func (r *LoggingRepository) StageAll(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("stage all",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.StageAll(ctx)
}

// Staged delegates to the wrapped repository and logs the operation.
func (r *LoggingRepository) Staged(ctx context.Context) (count int, err error) {
	defer func(begin time.Time) {
		r.logger.Info("staged changes",
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Staged(ctx)
}

// Commit delegates to the wrapped repository and logs the operation.
func (r *LoggingRepository) Commit(ctx context.Context, message string) (revision string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("commit",
			"message", message,
			"revision", revision,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Commit(ctx, message)
}

// Push delegates to the wrapped repository and logs the operation.
func (r *LoggingRepository) Push(ctx context.Context, remote, branch string) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("push",
			"remote", remote,
			"branch", branch,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Push(ctx, remote, branch)
}
