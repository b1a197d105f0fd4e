package slog

import (
	"context"
	"log/slog"

	"github.com/jarlesteinnes/docsync"
)

// Ensure NotificationSink implements docsync.NotificationSink.
var _ docsync.NotificationSink = (*NotificationSink)(nil)

// NotificationSink records notifications in the log instead of dispatching
// them anywhere. It is the sink used when no notification endpoint is
// configured.
type NotificationSink struct {
	logger *slog.Logger
}

// NewNotificationSink creates a new NotificationSink.
func NewNotificationSink(logger *slog.Logger) *NotificationSink {
	return &NotificationSink{logger: logger}
}

// Notify logs the notification that would have been dispatched.
func (s *NotificationSink) Notify(ctx context.Context, n *docsync.Notification) error {
	s.logger.Info("notification prepared",
		"eventType", n.EventType,
		"timestamp", n.ClientPayload.Timestamp,
		"totalDocuments", n.ClientPayload.TotalDocuments,
		"updatedCategories", n.ClientPayload.UpdatedCategories,
		"indexUrl", n.ClientPayload.IndexURL,
	)
	return nil
}
