// Package jsonfile writes parse results as indented UTF-8 JSON files.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ResultWriter = (*Writer)(nil)

// RecordsLayout is the time layout of the default records file name,
// e.g. LUBA_headnotes_2024-03-01--14-05.json.
const RecordsLayout = "2006-01-02--15-04"

// Options configures a Writer.
type Options struct {
	// Dir holds the default-named records file. Empty means the
	// working directory.
	Dir string

	// RecordsPath overrides the default records file name.
	RecordsPath string

	// MetaPath is the metadata file. Empty disables metadata output.
	MetaPath string

	// Now supplies the timestamp for the default records file name.
	// Defaults to time.Now.
	Now func() time.Time
}

// Writer writes records and metadata through a temp file and rename, so a
// failed run never leaves a truncated file behind.
type Writer struct {
	dir         string
	recordsPath string
	metaPath    string
	now         func() time.Time
}

// New creates a JSON file writer.
func New(opts Options) *Writer {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return &Writer{
		dir:         dir,
		recordsPath: opts.RecordsPath,
		metaPath:    opts.MetaPath,
		now:         now,
	}
}

// RecordsFileName returns the default records file name for t.
func RecordsFileName(t time.Time) string {
	return "LUBA_headnotes_" + t.Format(RecordsLayout) + ".json"
}

// WriteRecords writes records as a JSON array.
func (w *Writer) WriteRecords(records []domain.HeadnoteRecord) (string, error) {
	if records == nil {
		records = []domain.HeadnoteRecord{}
	}
	path := w.recordsPath
	if path == "" {
		path = filepath.Join(w.dir, RecordsFileName(w.now()))
	}
	if err := writeJSON(path, records); err != nil {
		return "", fmt.Errorf("write records: %w", err)
	}
	return path, nil
}

// metadataFile wraps metadata under a "metadata" key.
type metadataFile struct {
	Metadata domain.RunMetadata `json:"metadata"`
}

// WriteMetadata writes {"metadata": meta}.
func (w *Writer) WriteMetadata(meta domain.RunMetadata) (string, error) {
	if w.metaPath == "" {
		return "", nil
	}
	if err := writeJSON(w.metaPath, metadataFile{Metadata: meta}); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	return w.metaPath, nil
}

// writeJSON encodes v with two-space indentation and no HTML escaping,
// then atomically replaces path.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	_ = os.Chmod(tmpPath, 0644)
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
