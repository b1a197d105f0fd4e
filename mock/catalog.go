package mock

import (
	"context"

	"github.com/jarlesteinnes/docsync"
)

var _ docsync.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is a mock implementation of docsync.CatalogStore.
type CatalogStore struct {
	WriteCatalogFn func(ctx context.Context, c *docsync.Catalog) error
	ReadCatalogFn  func(ctx context.Context) (*docsync.Catalog, error)
}

func (s *CatalogStore) WriteCatalog(ctx context.Context, c *docsync.Catalog) error {
	return s.WriteCatalogFn(ctx, c)
}

func (s *CatalogStore) ReadCatalog(ctx context.Context) (*docsync.Catalog, error) {
	return s.ReadCatalogFn(ctx)
}
