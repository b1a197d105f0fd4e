package mock

import (
	"context"

	"github.com/jarlesteinnes/docsync"
)

var _ docsync.WebhookStore = (*WebhookStore)(nil)

// WebhookStore is a mock implementation of docsync.WebhookStore.
type WebhookStore struct {
	WriteWebhookConfigFn func(ctx context.Context, wc *docsync.WebhookConfig) error
}

func (s *WebhookStore) WriteWebhookConfig(ctx context.Context, wc *docsync.WebhookConfig) error {
	return s.WriteWebhookConfigFn(ctx, wc)
}
