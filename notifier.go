package docsync

import (
	"context"
	"time"
)

// Notification is the change event dispatched to the consumer application
// after a successful publish. Field names follow the dispatch wire format.
type Notification struct {
	EventType     string              `json:"event_type"`
	ClientPayload NotificationPayload `json:"client_payload"`
}

// NotificationPayload summarizes what the publish changed.
type NotificationPayload struct {
	Timestamp         string         `json:"timestamp"`
	TotalDocuments    int            `json:"totalDocuments"`
	CategoryCounts    map[string]int `json:"categoryCounts"`
	UpdatedCategories []string       `json:"updatedCategories"`
	IndexURL          string         `json:"indexUrl"`
	Version           string         `json:"version"`
}

// NewNotification builds the payload for a just-published catalog. The
// payload mirrors the catalog's statistics exactly; it is never computed
// independently.
func NewNotification(cfg *Config, c *Catalog, now time.Time) *Notification {
	return &Notification{
		EventType: cfg.Notify.EventType,
		ClientPayload: NotificationPayload{
			Timestamp:         now.UTC().Format(TimestampLayout),
			TotalDocuments:    c.Statistics.TotalDocuments,
			CategoryCounts:    c.Statistics.CategoryCounts,
			UpdatedCategories: cfg.CategoryNames(),
			IndexURL:          c.BaseURL + "/" + cfg.CatalogPath,
			Version:           c.Version,
		},
	}
}

// NotificationSink dispatches notifications to the consumer application.
// A failed dispatch never fails the run that produced it.
type NotificationSink interface {
	Notify(ctx context.Context, n *Notification) error
}
