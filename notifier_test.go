package docsync_test

import (
	"testing"
	"time"

	"github.com/jarlesteinnes/docsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	t.Parallel()

	cfg := docsync.DefaultConfig()
	catalog := &docsync.Catalog{
		BaseURL: cfg.BaseURL,
		Version: "2.0",
		Statistics: docsync.Statistics{
			TotalDocuments: 7,
			TotalSize:      1234,
			CategoryCounts: map[string]int{"vedtekter": 3, "protokoller": 4},
		},
	}
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	n := docsync.NewNotification(cfg, catalog, now)

	require.NotNil(t, n)
	assert.Equal(t, "document_update", n.EventType)
	assert.Equal(t, "2025-06-01T12:30:45Z", n.ClientPayload.Timestamp)
	assert.Equal(t, 7, n.ClientPayload.TotalDocuments)
	assert.Equal(t, catalog.Statistics.CategoryCounts, n.ClientPayload.CategoryCounts)
	assert.Equal(t, cfg.CategoryNames(), n.ClientPayload.UpdatedCategories)
	assert.Equal(t, cfg.BaseURL+"/pdf-index.json", n.ClientPayload.IndexURL)
	assert.Equal(t, "2.0", n.ClientPayload.Version)
}

func TestNewNotification_TimestampIsUTC(t *testing.T) {
	t.Parallel()

	cfg := docsync.DefaultConfig()
	catalog := &docsync.Catalog{BaseURL: cfg.BaseURL, Version: cfg.Version}
	oslo := time.FixedZone("CEST", 2*60*60)
	now := time.Date(2025, 6, 1, 14, 0, 0, 0, oslo)

	n := docsync.NewNotification(cfg, catalog, now)

	assert.Equal(t, "2025-06-01T12:00:00Z", n.ClientPayload.Timestamp)
}
