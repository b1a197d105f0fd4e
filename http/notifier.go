// Package http dispatches notifications to remote endpoints.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jarlesteinnes/docsync"
)

// Ensure NotificationSink implements docsync.NotificationSink.
var _ docsync.NotificationSink = (*NotificationSink)(nil)

// NotificationSink POSTs notifications to an HTTP endpoint as JSON.
type NotificationSink struct {
	endpoint string
	client   *http.Client
}

// NewNotificationSink creates a new NotificationSink for the endpoint.
// If client is nil, http.DefaultClient is used.
func NewNotificationSink(endpoint string, client *http.Client) *NotificationSink {
	if client == nil {
		client = http.DefaultClient
	}
	return &NotificationSink{endpoint: endpoint, client: client}
}

// Notify sends the notification and fails on any non-2xx response.
func (s *NotificationSink) Notify(ctx context.Context, n *docsync.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to dispatch notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return docsync.Errorf(docsync.EINTERNAL, "notification endpoint returned %s", resp.Status)
	}

	return nil
}
