package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarlesteinnes/docsync"
	"github.com/jarlesteinnes/docsync/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *docsync.Catalog {
	return &docsync.Catalog{
		LastUpdated: "2025-06-01T12:00:00Z",
		BaseURL:     "https://example.com/docs",
		Version:     "2.0",
		Categories: map[string]string{
			"særavtale_bntf": "Særavtale BNTF",
			"other":          "Other",
		},
		CategoryIcons: map[string]string{
			"særavtale_bntf": "🚁",
			"other":          "📁",
		},
		Documents: map[string][]*docsync.DocumentRecord{
			"særavtale_bntf": {
				{
					ID:                  "0a1b2c3d4e5f",
					Name:                "avtale 2024",
					Filename:            "avtale 2024.pdf",
					URL:                 "https://example.com/docs/særavtale_bntf/avtale%202024.pdf",
					Category:            "særavtale_bntf",
					CategoryDisplayName: "Særavtale BNTF",
					Icon:                "🚁",
					Size:                2048,
					Modified:            "2025-05-30T08:00:00Z",
					Hash:                "deadbeefdeadbeef",
				},
			},
			"other": {},
		},
		Statistics: docsync.Statistics{
			TotalDocuments: 1,
			TotalSize:      2048,
			CategoryCounts: map[string]int{"særavtale_bntf": 1, "other": 0},
		},
	}
}

func TestCatalogStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pdf-index.json")
	store := fs.NewCatalogStore(path)
	want := testCatalog()

	require.NoError(t, store.WriteCatalog(context.Background(), want))

	got, err := store.ReadCatalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogStore_WriteCatalog(t *testing.T) {
	t.Parallel()

	t.Run("preserves multi-byte characters literally", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pdf-index.json")
		store := fs.NewCatalogStore(path)

		require.NoError(t, store.WriteCatalog(context.Background(), testCatalog()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "særavtale_bntf")
		assert.Contains(t, string(data), "Særavtale BNTF")
		assert.Contains(t, string(data), "🚁")
		assert.NotContains(t, string(data), `\u`)
	})

	t.Run("writes human-readable indentation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pdf-index.json")
		store := fs.NewCatalogStore(path)

		require.NoError(t, store.WriteCatalog(context.Background(), testCatalog()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"lastUpdated\"")
	})

	t.Run("rejects inconsistent statistics", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pdf-index.json")
		store := fs.NewCatalogStore(path)
		c := testCatalog()
		c.Statistics.TotalDocuments = 99

		err := store.WriteCatalog(context.Background(), c)

		require.Error(t, err)
		assert.Equal(t, docsync.EINVALID, docsync.ErrorCode(err))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "invalid catalog should not be written")
	})

	t.Run("leaves no temporary file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "pdf-index.json")
		store := fs.NewCatalogStore(path)

		require.NoError(t, store.WriteCatalog(context.Background(), testCatalog()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.False(t, strings.HasSuffix(entries[0].Name(), ".tmp"))
	})

	t.Run("overwrites a previous catalog", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pdf-index.json")
		store := fs.NewCatalogStore(path)
		first := testCatalog()
		require.NoError(t, store.WriteCatalog(context.Background(), first))

		second := testCatalog()
		second.LastUpdated = "2025-06-02T12:00:00Z"
		require.NoError(t, store.WriteCatalog(context.Background(), second))

		got, err := store.ReadCatalog(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2025-06-02T12:00:00Z", got.LastUpdated)
	})
}

func TestCatalogStore_ReadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND when no catalog exists", func(t *testing.T) {
		t.Parallel()

		store := fs.NewCatalogStore(filepath.Join(t.TempDir(), "pdf-index.json"))

		_, err := store.ReadCatalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, docsync.ENOTFOUND, docsync.ErrorCode(err))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pdf-index.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		store := fs.NewCatalogStore(path)

		_, err := store.ReadCatalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, docsync.EINTERNAL, docsync.ErrorCode(err))
	})
}
