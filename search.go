package docsync

import "context"

// SearchHit is one catalog document matched by a search query.
type SearchHit struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Filename            string  `json:"filename"`
	Category            string  `json:"category"`
	CategoryDisplayName string  `json:"categoryDisplayName"`
	URL                 string  `json:"url"`
	Score               float64 `json:"score"`
}

// SearchService indexes catalog metadata and answers queries against it.
// Only metadata is indexed; document contents are never read.
type SearchService interface {
	// IndexCatalog replaces the index contents with the catalog's
	// documents.
	IndexCatalog(ctx context.Context, c *Catalog) error

	// Search returns the best-matching documents for the query, highest
	// score first.
	Search(ctx context.Context, query string, limit int) ([]*SearchHit, error)
}
