package docsync

import "context"

// SitemapWriter writes the sitemap of published document URLs so the static
// host stays crawlable. The sitemap is derived purely from a catalog.
type SitemapWriter interface {
	WriteSitemap(ctx context.Context, c *Catalog) error
}
