package mock

import (
	"context"

	"github.com/jarlesteinnes/docsync"
)

var _ docsync.NotificationSink = (*NotificationSink)(nil)

// NotificationSink is a mock implementation of docsync.NotificationSink.
type NotificationSink struct {
	NotifyFn func(ctx context.Context, n *docsync.Notification) error
}

func (s *NotificationSink) Notify(ctx context.Context, n *docsync.Notification) error {
	return s.NotifyFn(ctx, n)
}
