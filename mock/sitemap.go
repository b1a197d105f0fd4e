package mock

import (
	"context"

	"github.com/jarlesteinnes/docsync"
)

var _ docsync.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of docsync.SitemapWriter.
type SitemapWriter struct {
	WriteSitemapFn func(ctx context.Context, c *docsync.Catalog) error
}

func (w *SitemapWriter) WriteSitemap(ctx context.Context, c *docsync.Catalog) error {
	return w.WriteSitemapFn(ctx, c)
}
