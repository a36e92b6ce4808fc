package plaintext

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// maxLineLength bounds a single line; headnote paragraphs are rarely
// longer than a few kilobytes.
const maxLineLength = 1 << 20

// Reader reads plain text, one unstyled paragraph per non-blank line.
// Without italics, case names are found by the regex fallback.
type Reader struct{}

// New creates a new plain text reader.
func New() *Reader {
	return &Reader{}
}

// Name returns the reader name.
func (r *Reader) Name() string {
	return "plaintext"
}

// Extensions returns the extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{".txt", ".text"}
}

// Priority returns the selection priority.
func (r *Reader) Priority() int {
	return 5 // Fallback reader
}

// Read splits the file at path into paragraphs.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.Paragraph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var paras []domain.Paragraph
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paras = append(paras, domain.PlainParagraph(norm.NFC.String(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidInput, path, err)
	}
	return paras, nil
}
