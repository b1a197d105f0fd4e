package docsync

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
)

// TimestampLayout is the catalog timestamp format: UTC wall clock, second
// precision, trailing Z.
const TimestampLayout = "2006-01-02T15:04:05Z"

// DocumentRecord describes one scanned file. Field names follow the
// published catalog wire format consumed by the mobile app.
type DocumentRecord struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Filename            string `json:"filename"`
	URL                 string `json:"url"`
	Category            string `json:"category"`
	CategoryDisplayName string `json:"categoryDisplayName"`
	Icon                string `json:"icon"`
	Size                int64  `json:"size"`
	Modified            string `json:"modified"`
	Hash                string `json:"hash"`
}

// Statistics is the cached reduction over a catalog's document mapping. It
// is derived state, never maintained independently.
type Statistics struct {
	TotalDocuments int            `json:"totalDocuments"`
	TotalSize      int64          `json:"totalSize"`
	CategoryCounts map[string]int `json:"categoryCounts"`
}

// Catalog aggregates every known document plus summary statistics. A catalog
// is rebuilt from scratch on every run and serialized immediately.
type Catalog struct {
	LastUpdated   string                       `json:"lastUpdated"`
	BaseURL       string                       `json:"baseUrl"`
	Version       string                       `json:"version"`
	Categories    map[string]string            `json:"categories"`
	CategoryIcons map[string]string            `json:"categoryIcons"`
	Documents     map[string][]*DocumentRecord `json:"documents"`
	Statistics    Statistics                   `json:"statistics"`
}

// Validate returns an error if the catalog's statistics diverge from its
// document mapping.
func (c *Catalog) Validate() error {
	total := 0
	var size int64
	for name, docs := range c.Documents {
		if got := c.Statistics.CategoryCounts[name]; got != len(docs) {
			return Errorf(EINVALID, "category %q count %d does not match %d documents", name, got, len(docs))
		}
		total += len(docs)
		for _, d := range docs {
			size += d.Size
		}
	}
	for name := range c.Statistics.CategoryCounts {
		if _, ok := c.Documents[name]; !ok {
			return Errorf(EINVALID, "category %q has a count but no document list", name)
		}
	}
	if c.Statistics.TotalDocuments != total {
		return Errorf(EINVALID, "total document count %d does not match %d documents", c.Statistics.TotalDocuments, total)
	}
	if c.Statistics.TotalSize != size {
		return Errorf(EINVALID, "total size %d does not match %d bytes", c.Statistics.TotalSize, size)
	}
	return nil
}

// DocumentURL joins the base URL, the category and the percent-encoded
// filename into the public address of one document. The category is part of
// the repository layout and is used verbatim.
func DocumentURL(baseURL, category, filename string) string {
	return baseURL + "/" + category + "/" + url.PathEscape(filename)
}

// DocumentName returns the display name for a file: the filename without
// its extension.
func DocumentName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// CatalogStore persists catalogs.
type CatalogStore interface {
	// WriteCatalog durably writes the catalog to its configured path.
	WriteCatalog(ctx context.Context, c *Catalog) error

	// ReadCatalog loads the previously written catalog.
	// Returns ENOTFOUND if no catalog has been written yet.
	ReadCatalog(ctx context.Context) (*Catalog, error)
}
