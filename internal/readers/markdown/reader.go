package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/unicode/norm"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader decodes Markdown, mapping *emphasis* to italic runs and
// **strong emphasis** to bold runs.
type Reader struct {
	md goldmark.Markdown
}

// New creates a new Markdown reader.
func New() *Reader {
	return &Reader{md: goldmark.New()}
}

// Name returns the reader name.
func (r *Reader) Name() string {
	return "markdown"
}

// Extensions returns the extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Priority returns the selection priority.
func (r *Reader) Priority() int {
	return 50
}

// Read parses the file at path. Every paragraph, heading and tight list
// item becomes one Paragraph.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.Paragraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r.Parse(source), nil
}

// Parse converts Markdown source into paragraphs.
func (r *Reader) Parse(source []byte) []domain.Paragraph {
	root := r.md.Parser().Parse(text.NewReader(source))
	w := &walker{source: source}
	_ = ast.Walk(root, w.walk)
	return w.paragraphs
}

// walker collects styled runs while descending the AST.
type walker struct {
	source     []byte
	paragraphs []domain.Paragraph
	current    *domain.Paragraph
	bold       int
	italic     int
}

func (w *walker) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
		if entering {
			w.current = &domain.Paragraph{}
		} else if w.current != nil {
			w.paragraphs = append(w.paragraphs, *w.current)
			w.current = nil
		}

	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		// Level 1 = italic, Level 2 = bold
		if n.Level == 2 {
			w.bold += delta
		} else {
			w.italic += delta
		}

	case *ast.Text:
		if entering {
			s := string(n.Segment.Value(w.source))
			switch {
			case n.HardLineBreak():
				s += "\n"
			case n.SoftLineBreak():
				s += " "
			}
			w.add(s)
		}

	case *ast.String:
		if entering {
			w.add(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					w.add(string(t.Segment.Value(w.source)))
				}
			}
			return ast.WalkSkipChildren, nil
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

// add appends text as a run with the current emphasis, merging with the
// previous run when the styling matches.
func (w *walker) add(s string) {
	if w.current == nil || s == "" {
		return
	}
	run := domain.Run{
		Text:   norm.NFC.String(s),
		Bold:   w.bold > 0,
		Italic: w.italic > 0,
	}
	if n := len(w.current.Runs); n > 0 {
		last := &w.current.Runs[n-1]
		if last.Bold == run.Bold && last.Italic == run.Italic {
			last.Text += run.Text
			return
		}
	}
	w.current.Runs = append(w.current.Runs, run)
}
