// Package fs provides file-based scanning and storage for document
// catalogs.
package fs

import (
	"encoding/json"
	"os"
)

// writeJSON writes v as two-space indented JSON with HTML escaping off, so
// multi-byte characters stay literal. Content goes to a temporary file that
// is renamed over the target on success.
func writeJSON(path string, v any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
