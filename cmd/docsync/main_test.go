package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/jarlesteinnes/docsync"
	main "github.com/jarlesteinnes/docsync/cmd/docsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes a minimal configuration pointing the tool at dir.
func writeConfigFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "docsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: "+dir+"\n"), 0644))
	return path
}

// writeDocument creates a document file inside a category directory.
func writeDocument(t *testing.T, dir, category, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, category), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, category, name), []byte(content), 0644))
}

func TestMain_Run_SyncRequiresGitRepository(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDocument(t, dir, "protokoller", "styremøte.pdf", "innhold")

	m := main.NewMain()
	m.ConfigPath = writeConfigFile(t, dir)
	m.DBPath = filepath.Join(dir, "history.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"sync"}, stdout, stderr)

	require.Error(t, err)
	assert.Equal(t, docsync.EPRECONDITION, docsync.ErrorCode(err))
	assert.Contains(t, stderr.String(), "error:")
	assert.Contains(t, stderr.String(), "not a git repository")

	// The precondition check runs before any catalog work.
	_, statErr := os.Stat(filepath.Join(dir, "pdf-index.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMain_Run_CatalogEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDocument(t, dir, "protokoller", "styremøte.pdf", "innhold")

	m := main.NewMain()
	m.ConfigPath = writeConfigFile(t, dir)
	m.DBPath = filepath.Join(dir, "history.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"catalog"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Wrote pdf-index.json (1 documents)")

	data, err := os.ReadFile(filepath.Join(dir, "pdf-index.json"))
	require.NoError(t, err)

	var catalog docsync.Catalog
	require.NoError(t, json.Unmarshal(data, &catalog))
	assert.Equal(t, "2.0", catalog.Version)
	assert.Equal(t, 1, catalog.Statistics.TotalDocuments)
	require.Len(t, catalog.Documents["protokoller"], 1)
	assert.Equal(t, "styremøte", catalog.Documents["protokoller"][0].Name)
	assert.NoError(t, catalog.Validate())
}

func TestMain_Run_SyncWithoutRemote(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDocument(t, dir, "protokoller", "styremøte.pdf", "innhold")

	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	configPath := writeConfigFile(t, dir)
	dbPath := filepath.Join(dir, "history.db")

	m := main.NewMain()
	m.ConfigPath = configPath
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err = m.Run(context.Background(), []string{"sync"}, stdout, stderr)

	// The catalog is written and committed, then the push fails because
	// no remote is configured.
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Committed ")
	assert.Contains(t, stderr.String(), "is not configured")

	_, statErr := os.Stat(filepath.Join(dir, "pdf-index.json"))
	require.NoError(t, statErr)

	// The failed run is recorded and visible through the history command.
	m2 := main.NewMain()
	m2.ConfigPath = configPath
	m2.DBPath = dbPath

	historyOut := &bytes.Buffer{}
	historyErr := &bytes.Buffer{}

	err = m2.Run(context.Background(), []string{"history"}, historyOut, historyErr)

	require.NoError(t, err)
	assert.Contains(t, historyOut.String(), "1 documents")
	assert.Contains(t, historyOut.String(), "failed:")
}
