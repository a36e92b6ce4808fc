package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func intPtr(v int) *int {
	return &v
}

func testRecord(number, topic, caseName string, year int, warnings ...string) domain.HeadnoteRecord {
	if warnings == nil {
		warnings = []string{}
	}
	return domain.HeadnoteRecord{
		Headnote:   number,
		Topic:      topic,
		Summary:    "Summary of " + number + ". See ORS 197.830.",
		CaseName:   caseName,
		Citation:   "45 Or LUBA 100",
		Year:       intPtr(year),
		ORSCites:   []string{"ORS 197.830"},
		OARCites:   []string{},
		CaseCites:  []string{},
		Formatting: []domain.FormatSpan{domain.Bold(number + " " + topic), domain.Italic(caseName)},
		ErrorList:  warnings,
		Index:      "0",
	}
}

func testRun(id string, at time.Time, records []domain.HeadnoteRecord) domain.RunMetadata {
	result := &domain.ParseResult{Source: "headnotes.docx", Units: len(records), Records: records}
	return domain.NewRunMetadata(id, result, at)
}

// ==================== Store Creation Tests ====================

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DBFile), store.Path())
	assert.FileExists(t, store.Path())
}

func TestNewStore_RecordsMigrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()
	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	err = second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.db.Exec(`INSERT INTO headnotes (run_id, position, headnote) VALUES ('missing', 0, '1.1')`)
	assert.Error(t, err)
}

// ==================== HeadnoteStore Tests ====================

func TestHeadnoteStore_SaveAndGetRecord(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()

	rec := testRecord("1.2", "Standing – Petitioner", "Jones v. City of Salem", 2003)
	meta := testRun("run-1", time.Now(), []domain.HeadnoteRecord{rec})
	require.NoError(t, hs.SaveRun(ctx, meta, []domain.HeadnoteRecord{rec}))

	got, err := hs.GetRecord(ctx, "run-1", "1.2")
	require.NoError(t, err)
	assert.Equal(t, rec, *got)
}

func TestHeadnoteStore_NilYearRoundTrips(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()

	rec := testRecord("3.1", "Goals", "", 0, "Could not find case name")
	rec.Year = nil
	rec.Citation = ""
	require.NoError(t, hs.SaveRun(ctx, testRun("run-1", time.Now(), nil), []domain.HeadnoteRecord{rec}))

	got, err := hs.GetRecord(ctx, "run-1", "3.1")
	require.NoError(t, err)
	assert.Nil(t, got.Year)
	assert.Equal(t, []string{"Could not find case name"}, got.ErrorList)
}

func TestHeadnoteStore_GetRecordNotFound(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()

	_, err := hs.GetRecord(context.Background(), "run-1", "9.9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHeadnoteStore_GetRecordFirstOfDuplicates(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()

	first := testRecord("1.1", "Standing", "Jones v. City of Salem", 2003)
	second := testRecord("1.1", "Standing", "Smith v. Marion County", 2010)
	require.NoError(t, hs.SaveRun(ctx, testRun("run-1", time.Now(), nil), []domain.HeadnoteRecord{first, second}))

	got, err := hs.GetRecord(ctx, "run-1", "1.1")
	require.NoError(t, err)
	assert.Equal(t, "Jones v. City of Salem", got.CaseName)
}

func TestHeadnoteStore_SaveRunRequiresID(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()

	err := hs.SaveRun(context.Background(), domain.RunMetadata{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHeadnoteStore_SaveRunReplacesExisting(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, hs.SaveRun(ctx, testRun("run-1", now, nil), []domain.HeadnoteRecord{
		testRecord("1.1", "Standing", "Jones v. City of Salem", 2003),
		testRecord("1.2", "Standing", "Jones v. City of Salem", 2003),
	}))
	require.NoError(t, hs.SaveRun(ctx, testRun("run-1", now, nil), []domain.HeadnoteRecord{
		testRecord("2.1", "Goals", "Smith v. Marion County", 2010),
	}))

	records, err := hs.ListRecords(ctx, domain.RecordFilter{RunID: "run-1"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2.1", records[0].Headnote)
}

func TestHeadnoteStore_LatestRun(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()

	_, err := hs.LatestRun(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	older := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	newer := older.Add(time.Hour)
	require.NoError(t, hs.SaveRun(ctx, testRun("new", newer, nil), nil))
	require.NoError(t, hs.SaveRun(ctx, testRun("old", older, nil), nil))

	latest, err := hs.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", latest.RunID)
	assert.True(t, newer.Equal(latest.ProcessedDate))
	assert.Equal(t, "headnotes.docx", latest.SourceFile)
	assert.Equal(t, []string{}, latest.PossibleErrors)
	assert.Equal(t, []domain.UnitFailure{}, latest.Errors)
}

func TestHeadnoteStore_LatestRunTieBreaksOnInsertOrder(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, hs.SaveRun(ctx, testRun("a", at, nil), nil))
	require.NoError(t, hs.SaveRun(ctx, testRun("b", at, nil), nil))

	latest, err := hs.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", latest.RunID)
}

func TestHeadnoteStore_LatestRunKeepsFailures(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()

	rec := testRecord("1.1", "Standing", "", 2003, "Could not find case name")
	result := &domain.ParseResult{
		Source:   "headnotes.docx",
		Units:    2,
		Records:  []domain.HeadnoteRecord{rec},
		Failures: []domain.UnitFailure{{Index: 1, Error: "boom", Preview: "1.2 Standing..."}},
	}
	meta := domain.NewRunMetadata("run-1", result, time.Now())
	require.NoError(t, hs.SaveRun(ctx, meta, result.Records))

	latest, err := hs.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, latest.TotalHeadnotes)
	assert.Equal(t, 1, latest.ParsingFailures)
	assert.Equal(t, []string{"item 0: Could not find case name"}, latest.PossibleErrors)
	assert.Equal(t, result.Failures, latest.Errors)
}

func TestHeadnoteStore_ListRecordsFilters(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()

	require.NoError(t, hs.SaveRun(ctx, testRun("run-1", time.Now(), nil), []domain.HeadnoteRecord{
		testRecord("1.1", "Standing – Petitioner", "Jones v. City of Salem", 2003),
		testRecord("2.1", "Goals – Riparian Areas", "Smith v. Marion County", 2010, "Level mismatch"),
		testRecord("2.2", "Goals – 100% Rule", "Doe v. Lane County", 2010),
	}))

	tests := []struct {
		name   string
		filter domain.RecordFilter
		want   []string
	}{
		{"all", domain.RecordFilter{}, []string{"1.1", "2.1", "2.2"}},
		{"topic case-insensitive", domain.RecordFilter{Topic: "goals"}, []string{"2.1", "2.2"}},
		{"topic wildcard escaped", domain.RecordFilter{Topic: "100%"}, []string{"2.2"}},
		{"underscore literal", domain.RecordFilter{Topic: "_"}, nil},
		{"case name", domain.RecordFilter{CaseName: "marion"}, []string{"2.1"}},
		{"year", domain.RecordFilter{Year: 2003}, []string{"1.1"}},
		{"warnings only", domain.RecordFilter{WarningsOnly: true}, []string{"2.1"}},
		{"limit", domain.RecordFilter{Limit: 2}, []string{"1.1", "2.1"}},
		{"combined", domain.RecordFilter{Topic: "goals", Year: 2010, WarningsOnly: true}, []string{"2.1"}},
		{"unknown run", domain.RecordFilter{RunID: "other"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := hs.ListRecords(ctx, tt.filter)
			require.NoError(t, err)

			var got []string
			for _, rec := range records {
				got = append(got, rec.Headnote)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeadnoteStore_ListRecordsNewestRunFirst(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()
	older := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, hs.SaveRun(ctx, testRun("old", older, nil), []domain.HeadnoteRecord{
		testRecord("1.1", "Standing", "Jones v. City of Salem", 2003),
	}))
	require.NoError(t, hs.SaveRun(ctx, testRun("new", older.Add(time.Minute), nil), []domain.HeadnoteRecord{
		testRecord("5.1", "Goals", "Smith v. Marion County", 2010),
		testRecord("5.2", "Goals", "Smith v. Marion County", 2010),
	}))

	records, err := hs.ListRecords(ctx, domain.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "5.1", records[0].Headnote)
	assert.Equal(t, "5.2", records[1].Headnote)
	assert.Equal(t, "1.1", records[2].Headnote)
}

func TestHeadnoteStore_NilListsStoredAsEmpty(t *testing.T) {
	hs := setupTestStore(t).HeadnoteStore()
	ctx := context.Background()

	rec := domain.HeadnoteRecord{Headnote: "1.1", Topic: "Standing"}
	require.NoError(t, hs.SaveRun(ctx, testRun("run-1", time.Now(), nil), []domain.HeadnoteRecord{rec}))

	got, err := hs.GetRecord(ctx, "run-1", "1.1")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.ORSCites)
	assert.Equal(t, []domain.FormatSpan{}, got.Formatting)
	assert.Equal(t, []string{}, got.ErrorList)
}
