package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/jarlesteinnes/docsync"
)

// Ensure Scanner implements docsync.Scanner at compile time.
var _ docsync.Scanner = (*Scanner)(nil)

// Scanner enumerates document files in per-category directories under a
// root directory.
type Scanner struct {
	root   string
	ext    string
	logger *slog.Logger
}

// NewScanner creates a Scanner rooted at root that accepts files with the
// given extension (including the leading dot). A nil logger discards the
// per-file warnings.
func NewScanner(root, ext string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scanner{root: root, ext: ext, logger: logger}
}

// ScanCategory lists the document files directly inside the category's
// directory. A missing directory yields an empty result and no error.
// A file whose metadata cannot be read is logged and reported with zero
// values; the scan continues.
func (s *Scanner) ScanCategory(ctx context.Context, category string) ([]*docsync.ScannedFile, error) {
	dir := filepath.Join(s.root, category)

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, docsync.Errorf(docsync.EINTERNAL, "reading category %q: %v", category, err)
	}

	var files []*docsync.ScannedFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != s.ext {
			continue
		}
		files = append(files, s.scanFile(category, dir, entry.Name()))
	}
	return files, nil
}

// scanFile reads one file's metadata. Any failure leaves the returned
// record zeroed apart from the filename.
func (s *Scanner) scanFile(category, dir, name string) *docsync.ScannedFile {
	f := &docsync.ScannedFile{Filename: name}
	path := filepath.Join(dir, name)

	info, err := os.Stat(path)
	if err != nil {
		s.logger.Error("reading file metadata", "category", category, "file", name, "err", err)
		return f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("reading file contents", "category", category, "file", name, "err", err)
		return f
	}

	f.Size = info.Size()
	f.Modified = info.ModTime().UTC()
	f.Hash = fmt.Sprintf("%016x", xxhash.Sum64(data))
	return f
}
