package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

var fixedTime = time.Date(2024, 3, 1, 14, 5, 59, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func TestRecordsFileName(t *testing.T) {
	assert.Equal(t, "LUBA_headnotes_2024-03-01--14-05.json", RecordsFileName(fixedTime))
}

func TestWriteRecords_DefaultName(t *testing.T) {
	dir := t.TempDir()
	w := New(Options{Dir: dir, Now: fixedClock})
	year := 2003
	records := []domain.HeadnoteRecord{{
		Headnote:   "1.2",
		Topic:      "Standing – Petitioner",
		Summary:    "Use <b> & keep it.",
		CaseName:   "Jones v. City of Salem",
		Citation:   "45 Or LUBA 100",
		Year:       &year,
		ORSCites:   []string{},
		OARCites:   []string{},
		CaseCites:  []string{},
		Formatting: []domain.FormatSpan{},
		ErrorList:  []string{},
		Index:      "0",
	}}

	path, err := w.WriteRecords(records)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "LUBA_headnotes_2024-03-01--14-05.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "\n  {\n    \"headnote\": \"1.2\",")
	assert.Contains(t, content, "Standing – Petitioner")
	assert.Contains(t, content, "Use <b> & keep it.")
	assert.Contains(t, content, `"year": 2003`)

	var decoded []domain.HeadnoteRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, records, decoded)
}

func TestWriteRecords_NilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := New(Options{RecordsPath: path})

	got, err := w.WriteRecords(nil)

	require.NoError(t, err)
	assert.Equal(t, path, got)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestWriteRecords_CreatesDirectoryAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	w := New(Options{RecordsPath: path})

	_, err := w.WriteRecords([]domain.HeadnoteRecord{{Headnote: "1"}})
	require.NoError(t, err)
	_, err = w.WriteRecords([]domain.HeadnoteRecord{{Headnote: "2"}})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []domain.HeadnoteRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "2", decoded[0].Headnote)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteRecords_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	w := New(Options{RecordsPath: filepath.Join(blocker, "out.json")})

	_, err := w.WriteRecords(nil)

	assert.Error(t, err)
}

func TestWriteMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Headnotes_Results.json")
	w := New(Options{MetaPath: path})
	meta := domain.RunMetadata{
		RunID:           "run-1",
		SourceFile:      "headnotes.docx",
		TotalHeadnotes:  2,
		ParsingFailures: 1,
		PossibleErrors:  []string{"item 0: No topic found"},
		ProcessedDate:   fixedTime,
		Errors:          []domain.UnitFailure{{Index: 1, Error: "boom", Preview: "1.3 ..."}},
	}

	got, err := w.WriteMetadata(meta)

	require.NoError(t, err)
	assert.Equal(t, path, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	md := decoded["metadata"]
	require.NotNil(t, md)
	assert.Equal(t, float64(2), md["total_headnotes"])
	assert.Equal(t, float64(1), md["parsing_failures"])
	assert.Equal(t, "2024-03-01T14:05:59Z", md["processed_date"])
	assert.Equal(t, []any{"item 0: No topic found"}, md["possible_errors"])
}

func TestWriteMetadata_Disabled(t *testing.T) {
	w := New(Options{Dir: t.TempDir()})

	path, err := w.WriteMetadata(domain.RunMetadata{})

	require.NoError(t, err)
	assert.Empty(t, path)
}
