package fs

import (
	"context"

	"github.com/jarlesteinnes/docsync"
)

// Ensure WebhookStore implements docsync.WebhookStore at compile time.
var _ docsync.WebhookStore = (*WebhookStore)(nil)

// WebhookStore persists webhook configuration documents.
type WebhookStore struct {
	path string
}

// NewWebhookStore creates a WebhookStore writing to the given path.
func NewWebhookStore(path string) *WebhookStore {
	return &WebhookStore{path: path}
}

// WriteWebhookConfig writes the automation document atomically.
func (s *WebhookStore) WriteWebhookConfig(ctx context.Context, wc *docsync.WebhookConfig) error {
	return writeJSON(s.path, wc)
}
