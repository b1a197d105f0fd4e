package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/jarlesteinnes/docsync"
)

// Ensure CatalogStore implements docsync.CatalogStore at compile time.
var _ docsync.CatalogStore = (*CatalogStore)(nil)

// CatalogStore persists the catalog as indented UTF-8 JSON at a fixed path.
type CatalogStore struct {
	path string
}

// NewCatalogStore creates a CatalogStore writing to the given path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// WriteCatalog validates the catalog and writes it atomically.
func (s *CatalogStore) WriteCatalog(ctx context.Context, c *docsync.Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return writeJSON(s.path, c)
}

// ReadCatalog loads the previously written catalog.
// Returns ENOTFOUND if no catalog has been written yet.
func (s *CatalogStore) ReadCatalog(ctx context.Context) (*docsync.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docsync.Errorf(docsync.ENOTFOUND, "catalog %q not found", s.path)
	}
	if err != nil {
		return nil, err
	}

	var c docsync.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, docsync.Errorf(docsync.EINTERNAL, "parsing catalog %q: %v", s.path, err)
	}
	return &c, nil
}
