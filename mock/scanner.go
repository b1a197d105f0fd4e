package mock

import (
	"context"

	"github.com/jarlesteinnes/docsync"
)

var _ docsync.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of docsync.Scanner.
type Scanner struct {
	ScanCategoryFn func(ctx context.Context, category string) ([]*docsync.ScannedFile, error)
}

func (s *Scanner) ScanCategory(ctx context.Context, category string) ([]*docsync.ScannedFile, error) {
	return s.ScanCategoryFn(ctx, category)
}
