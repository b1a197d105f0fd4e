package fs

import (
	"context"
	"os"
	"sort"

	"github.com/beevik/etree"
	"github.com/jarlesteinnes/docsync"
)

// Ensure SitemapWriter implements docsync.SitemapWriter at compile time.
var _ docsync.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter writes a sitemaps.org urlset of all document URLs so the
// static host stays crawlable.
type SitemapWriter struct {
	path string
}

// NewSitemapWriter creates a SitemapWriter writing to the given path.
func NewSitemapWriter(path string) *SitemapWriter {
	return &SitemapWriter{path: path}
}

// WriteSitemap renders the catalog's document URLs as a sitemap. Categories
// are emitted in sorted order for deterministic output.
func (w *SitemapWriter) WriteSitemap(ctx context.Context, c *docsync.Catalog) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	categories := make([]string, 0, len(c.Documents))
	for name := range c.Documents {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	for _, category := range categories {
		for _, d := range c.Documents[category] {
			urlEl := urlset.CreateElement("url")
			urlEl.CreateElement("loc").SetText(d.URL)
			if d.Modified != "" {
				urlEl.CreateElement("lastmod").SetText(d.Modified)
			}
		}
	}
	doc.Indent(2)

	tmp := w.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, w.path)
}
