package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jarlesteinnes/docsync"
)

// Ensure LoggingScanner implements docsync.Scanner.
var _ docsync.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with per-category logging.
type LoggingScanner struct {
	next   docsync.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next docsync.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// ScanCategory delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) ScanCategory(ctx context.Context, category string) (files []*docsync.ScannedFile, err error) {
	defer func(begin time.Time) {
		s.logger.Info("category scan",
			"category", category,
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ScanCategory(ctx, category)
}
