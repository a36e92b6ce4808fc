package markdown

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

func TestNew(t *testing.T) {
	reader := New()
	require.NotNil(t, reader)
	assert.Equal(t, "markdown", reader.Name())
	assert.Equal(t, []string{".md", ".markdown"}, reader.Extensions())
	assert.Equal(t, 50, reader.Priority())
}

func TestParse_Emphasis(t *testing.T) {
	src := "**1.2 Standing – Petitioner.** A petitioner must appear. *Jones v. City of Salem*, 45 Or LUBA 100 (2003).\n"

	paras := New().Parse([]byte(src))

	require.Len(t, paras, 1)
	assert.Equal(t, []domain.Run{
		{Text: "1.2 Standing – Petitioner.", Bold: true},
		{Text: " A petitioner must appear. "},
		{Text: "Jones v. City of Salem", Italic: true},
		{Text: ", 45 Or LUBA 100 (2003)."},
	}, paras[0].Runs)
}

func TestParse_NestedEmphasis(t *testing.T) {
	paras := New().Parse([]byte("***both*** plain\n"))

	require.Len(t, paras, 1)
	require.NotEmpty(t, paras[0].Runs)
	assert.Equal(t, domain.Run{Text: "both", Bold: true, Italic: true}, paras[0].Runs[0])
	assert.Equal(t, "both plain", paras[0].Text())
}

func TestParse_BlocksBecomeParagraphs(t *testing.T) {
	src := "# LUBA Headnotes\n\n1.2 Topic. Body\ncontinues here.\n\n- item one\n- item two\n\n```\ncode 1.2 ignored\n```\n"

	paras := New().Parse([]byte(src))

	var texts []string
	for _, p := range paras {
		texts = append(texts, p.Text())
	}
	assert.Equal(t, []string{"LUBA Headnotes", "1.2 Topic. Body continues here.", "item one", "item two"}, texts)
}

func TestParse_CodeSpanKeepsText(t *testing.T) {
	paras := New().Parse([]byte("See `ORS 197.830` now.\n"))

	require.Len(t, paras, 1)
	assert.Equal(t, "See ORS 197.830 now.", paras[0].Text())
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headnotes.md")
	require.NoError(t, os.WriteFile(path, []byte("1 Notice. *A v. B*, 1 Or LUBA 1 (1978).\n"), 0600))

	paras, err := New().Read(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, paras, 1)
	assert.Equal(t, "1 Notice. A v. B, 1 Or LUBA 1 (1978).", paras[0].Text())
}

func TestRead_MissingFile(t *testing.T) {
	_, err := New().Read(context.Background(), filepath.Join(t.TempDir(), "missing.md"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
