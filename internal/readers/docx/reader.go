package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// documentPart is the main body part inside a DOCX package.
const documentPart = "word/document.xml"

// Reader decodes DOCX documents, keeping bold and italic run properties.
type Reader struct{}

// New creates a new DOCX reader.
func New() *Reader {
	return &Reader{}
}

// Name returns the reader name.
func (r *Reader) Name() string {
	return "docx"
}

// Extensions returns the extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{".docx"}
}

// Priority returns the selection priority.
func (r *Reader) Priority() int {
	return 50
}

// Read opens the package at path and decodes word/document.xml.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.Paragraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s is not a DOCX package: %v", domain.ErrInvalidInput, path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidInput, documentPart, err)
		}
		defer rc.Close()
		return decode(ctx, rc)
	}
	return nil, fmt.Errorf("%w: %s has no %s", domain.ErrInvalidInput, path, documentPart)
}

// decoder tracks where the token stream is within the WordprocessingML tree.
// Only w:rPr directly inside a run sets formatting; the paragraph mark's
// w:pPr/w:rPr is ignored, as is the previous formatting recorded under
// w:rPrChange and w:pPrChange. Text boxes and tables are skipped so only
// body-level paragraphs are returned.
type decoder struct {
	paragraphs []domain.Paragraph
	current    *domain.Paragraph

	inRun   bool
	inRPr   bool
	inText  bool
	skipped int
	changed int

	run  domain.Run
	text strings.Builder
}

// decode streams document.xml into paragraphs.
func decode(ctx context.Context, r io.Reader) ([]domain.Paragraph, error) {
	d := &decoder{}
	xd := xml.NewDecoder(r)

	for {
		tok, err := xd.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed %s: %v", domain.ErrInvalidInput, documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			d.start(t)
		case xml.EndElement:
			if d.end(t) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
			}
		case xml.CharData:
			if d.inText && d.skipped == 0 {
				d.text.Write(t)
			}
		}
	}
	return d.paragraphs, nil
}

func (d *decoder) start(t xml.StartElement) {
	if skippedElement(t.Name.Local) {
		d.skipped++
		return
	}
	if d.skipped > 0 {
		return
	}

	switch t.Name.Local {
	case "rPrChange", "pPrChange":
		d.changed++
		return
	}
	if d.changed > 0 {
		return
	}

	switch t.Name.Local {
	case "p":
		d.current = &domain.Paragraph{}
	case "r":
		if d.current != nil {
			d.inRun = true
			d.run = domain.Run{}
			d.text.Reset()
		}
	case "rPr":
		d.inRPr = d.inRun
	case "b":
		if d.inRPr {
			d.run.Bold = enabled(t)
		}
	case "i":
		if d.inRPr {
			d.run.Italic = enabled(t)
		}
	case "t":
		d.inText = d.inRun
	case "tab":
		if d.inRun && !d.inRPr {
			d.text.WriteByte('\t')
		}
	case "br", "cr":
		if d.inRun {
			d.text.WriteByte('\n')
		}
	}
}

// end handles a closing tag and reports whether a paragraph was completed.
func (d *decoder) end(t xml.EndElement) bool {
	if skippedElement(t.Name.Local) {
		d.skipped--
		return false
	}
	if d.skipped > 0 {
		return false
	}

	switch t.Name.Local {
	case "rPrChange", "pPrChange":
		d.changed--
		return false
	}
	if d.changed > 0 {
		return false
	}

	switch t.Name.Local {
	case "t":
		d.inText = false
	case "rPr":
		d.inRPr = false
	case "r":
		if d.inRun {
			if s := d.text.String(); s != "" {
				d.run.Text = norm.NFC.String(s)
				d.current.Runs = append(d.current.Runs, d.run)
			}
			d.inRun = false
		}
	case "p":
		if d.current != nil {
			d.paragraphs = append(d.paragraphs, *d.current)
			d.current = nil
			return true
		}
	}
	return false
}

// skippedElement reports whether everything inside the element is left
// out of the body stream.
func skippedElement(local string) bool {
	return local == "txbxContent" || local == "tbl"
}

// enabled reads a WordprocessingML on/off property. A bare element is on;
// w:val of 0, false or off turns it off.
func enabled(t xml.StartElement) bool {
	for _, attr := range t.Attr {
		if attr.Name.Local != "val" {
			continue
		}
		switch strings.ToLower(attr.Value) {
		case "0", "false", "off":
			return false
		}
	}
	return true
}
