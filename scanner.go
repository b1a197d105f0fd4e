package docsync

import (
	"context"
	"time"
)

// ScannedFile is the per-file metadata collected by a Scanner. A file whose
// metadata could not be read is reported with zero values rather than
// dropped, so one bad file never aborts a catalog build.
type ScannedFile struct {
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Hash     string    `json:"hash"`
}

// Scanner enumerates document files for one category.
type Scanner interface {
	// ScanCategory lists the document files directly inside the category's
	// directory (non-recursive), sorted lexicographically by filename.
	// A missing directory yields an empty result and no error.
	ScanCategory(ctx context.Context, category string) ([]*ScannedFile, error)
}
