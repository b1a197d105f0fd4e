package mock

import (
	"context"

	"github.com/jarlesteinnes/docsync"
)

var _ docsync.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of docsync.SearchService.
type SearchService struct {
	IndexCatalogFn func(ctx context.Context, c *docsync.Catalog) error
	SearchFn       func(ctx context.Context, query string, limit int) ([]*docsync.SearchHit, error)
}

func (s *SearchService) IndexCatalog(ctx context.Context, c *docsync.Catalog) error {
	return s.IndexCatalogFn(ctx, c)
}

func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]*docsync.SearchHit, error) {
	return s.SearchFn(ctx, query, limit)
}
