// Package bleve implements catalog search with an in-memory Bleve index.
package bleve

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/jarlesteinnes/docsync"
)

// DefaultLimit is the number of hits returned when no limit is given.
const DefaultLimit = 10

// Indexed field names. They mirror the catalog's document keys.
const (
	fieldName                = "name"
	fieldFilename            = "filename"
	fieldCategory            = "category"
	fieldCategoryDisplayName = "categoryDisplayName"
	fieldURL                 = "url"
)

// document is the indexed representation of a catalog document. Only
// metadata is indexed; file contents are never read.
type document struct {
	Name                string `json:"name"`
	Filename            string `json:"filename"`
	Category            string `json:"category"`
	CategoryDisplayName string `json:"categoryDisplayName"`
	URL                 string `json:"url"`
}

// Compile-time interface verification.
var _ docsync.SearchService = (*SearchService)(nil)

// SearchService implements docsync.SearchService. The index lives in memory
// and is rebuilt from the catalog on every IndexCatalog call.
type SearchService struct {
	index bleve.Index
}

// NewSearchService creates a new SearchService with an empty index.
func NewSearchService() (*SearchService, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}
	return &SearchService{index: index}, nil
}

// Close releases the index.
func (s *SearchService) Close() error {
	return s.index.Close()
}

// buildIndexMapping maps document names and filenames for full-text search
// and categories as exact keywords.
func buildIndexMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	nameField := bleve.NewTextFieldMapping()
	nameField.Analyzer = standard.Name
	nameField.Store = true
	docMapping.AddFieldMappingsAt(fieldName, nameField)

	filenameField := bleve.NewTextFieldMapping()
	filenameField.Analyzer = standard.Name
	filenameField.Store = true
	docMapping.AddFieldMappingsAt(fieldFilename, filenameField)

	categoryField := bleve.NewTextFieldMapping()
	categoryField.Analyzer = keyword.Name
	categoryField.Store = true
	docMapping.AddFieldMappingsAt(fieldCategory, categoryField)

	displayNameField := bleve.NewTextFieldMapping()
	displayNameField.Analyzer = standard.Name
	displayNameField.Store = true
	docMapping.AddFieldMappingsAt(fieldCategoryDisplayName, displayNameField)

	// URL is retrieved with hits but never searched.
	urlField := bleve.NewTextFieldMapping()
	urlField.Index = false
	urlField.Store = true
	docMapping.AddFieldMappingsAt(fieldURL, urlField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = standard.Name

	return indexMapping
}

// IndexCatalog replaces the index contents with the catalog's documents.
func (s *SearchService) IndexCatalog(ctx context.Context, c *docsync.Catalog) error {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}

	batch := index.NewBatch()
	for _, docs := range c.Documents {
		for _, d := range docs {
			doc := document{
				Name:                d.Name,
				Filename:            d.Filename,
				Category:            d.Category,
				CategoryDisplayName: d.CategoryDisplayName,
				URL:                 d.URL,
			}
			if err := batch.Index(d.ID, doc); err != nil {
				index.Close()
				return fmt.Errorf("failed to index document %s: %w", d.ID, err)
			}
		}
	}

	if err := index.Batch(batch); err != nil {
		index.Close()
		return fmt.Errorf("batch index failed: %w", err)
	}

	old := s.index
	s.index = index
	if old != nil {
		old.Close()
	}

	return nil
}

// Search returns the best-matching documents for the query, highest score
// first. A non-positive limit falls back to DefaultLimit.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]*docsync.SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, docsync.Errorf(docsync.EINVALID, "search query is required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Names carry the most signal, so matches there outrank matches on
	// filenames or category labels.
	nameQuery := bleve.NewMatchQuery(query)
	nameQuery.SetField(fieldName)
	nameQuery.SetBoost(5.0)

	filenameQuery := bleve.NewMatchQuery(query)
	filenameQuery.SetField(fieldFilename)

	displayNameQuery := bleve.NewMatchQuery(query)
	displayNameQuery.SetField(fieldCategoryDisplayName)

	searchQuery := bleve.NewDisjunctionQuery(nameQuery, filenameQuery, displayNameQuery)

	req := bleve.NewSearchRequestOptions(searchQuery, limit, 0, false)
	req.Fields = []string{fieldName, fieldFilename, fieldCategory, fieldCategoryDisplayName, fieldURL}

	results, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]*docsync.SearchHit, 0, len(results.Hits))
	for _, hit := range results.Hits {
		h := &docsync.SearchHit{ID: hit.ID, Score: hit.Score}
		if v, ok := hit.Fields[fieldName].(string); ok {
			h.Name = v
		}
		if v, ok := hit.Fields[fieldFilename].(string); ok {
			h.Filename = v
		}
		if v, ok := hit.Fields[fieldCategory].(string); ok {
			h.Category = v
		}
		if v, ok := hit.Fields[fieldCategoryDisplayName].(string); ok {
			h.CategoryDisplayName = v
		}
		if v, ok := hit.Fields[fieldURL].(string); ok {
			h.URL = v
		}
		hits = append(hits, h)
	}

	return hits, nil
}
