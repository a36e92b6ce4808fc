package readers

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/logger"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/readers/docx"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/readers/markdown"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/readers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.ReaderRegistry = (*Registry)(nil)

// Registry dispatches reads by file extension.
type Registry struct {
	mu      sync.RWMutex
	readers []driven.DocumentReader
}

// NewRegistry creates a registry holding the given readers.
func NewRegistry(readers ...driven.DocumentReader) *Registry {
	r := &Registry{}
	for _, reader := range readers {
		r.Register(reader)
	}
	return r
}

// Defaults returns a registry with the DOCX, Markdown and plain text readers.
func Defaults() *Registry {
	return NewRegistry(docx.New(), markdown.New(), plaintext.New())
}

// Register adds a reader to the registry.
func (r *Registry) Register(reader driven.DocumentReader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readers = append(r.readers, reader)
}

// Select returns the highest-priority reader for path's extension.
// Ties go to the reader registered first.
func (r *Registry) Select(path string) (driven.DocumentReader, error) {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.RLock()
	defer r.mu.RUnlock()

	var best driven.DocumentReader
	for _, reader := range r.readers {
		if !handles(reader, ext) {
			continue
		}
		if best == nil || reader.Priority() > best.Priority() {
			best = reader
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, ext)
	}
	return best, nil
}

// Read decodes path with the selected reader.
func (r *Registry) Read(ctx context.Context, path string) ([]domain.Paragraph, error) {
	reader, err := r.Select(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("reading %s with %s reader", path, reader.Name())
	return reader.Read(ctx, path)
}

// SupportedExtensions returns every registered extension, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var exts []string
	for _, reader := range r.readers {
		for _, ext := range reader.Extensions() {
			if !seen[ext] {
				seen[ext] = true
				exts = append(exts, ext)
			}
		}
	}
	sort.Strings(exts)
	return exts
}

func handles(reader driven.DocumentReader, ext string) bool {
	for _, e := range reader.Extensions() {
		if e == ext {
			return true
		}
	}
	return false
}
