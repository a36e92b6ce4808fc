package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// headnoteStore implements driven.HeadnoteStore.
type headnoteStore struct {
	store *Store
}

var _ driven.HeadnoteStore = (*headnoteStore)(nil)

const headnoteColumns = `h.headnote, h.topic, h.summary, h.case_name, h.citation, h.year,
	h.ors_cites, h.oar_cites, h.case_cites, h.formatting, h.error_list, h.item_index`

// SaveRun stores a run and its records in one transaction. A run with the
// same ID is replaced.
func (s *headnoteStore) SaveRun(ctx context.Context, meta domain.RunMetadata, records []domain.HeadnoteRecord) (err error) {
	if meta.RunID == "" {
		return fmt.Errorf("%w: run id is required", domain.ErrInvalidInput)
	}

	possibleErrors, err := marshalJSON(meta.PossibleErrors, "[]")
	if err != nil {
		return fmt.Errorf("marshalling possible errors: %w", err)
	}
	failures, err := marshalJSON(meta.Errors, "[]")
	if err != nil {
		return fmt.Errorf("marshalling errors: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM headnotes WHERE run_id = ?`, meta.RunID); err != nil {
		return fmt.Errorf("clearing run: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, meta.RunID); err != nil {
		return fmt.Errorf("clearing run: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, source_file, total_headnotes, parsing_failures, possible_errors, errors, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, meta.RunID, meta.SourceFile, meta.TotalHeadnotes, meta.ParsingFailures,
		possibleErrors, failures, meta.ProcessedDate.UnixNano())
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO headnotes (run_id, position, headnote, topic, summary, case_name, citation, year,
			ors_cites, oar_cites, case_cites, formatting, error_list, warning_count, item_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		rec := &records[i]
		cols, err := encodeLists(rec)
		if err != nil {
			return fmt.Errorf("encoding headnote %s: %w", rec.Headnote, err)
		}
		_, err = stmt.ExecContext(ctx, meta.RunID, i, rec.Headnote, rec.Topic, rec.Summary,
			rec.CaseName, rec.Citation, nullInt(rec.Year),
			cols[0], cols[1], cols[2], cols[3], cols[4], len(rec.ErrorList), rec.Index)
		if err != nil {
			return fmt.Errorf("saving headnote %s: %w", rec.Headnote, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// LatestRun returns the run with the most recent processed date.
func (s *headnoteStore) LatestRun(ctx context.Context) (*domain.RunMetadata, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source_file, total_headnotes, parsing_failures, possible_errors, errors, processed_at
		FROM runs ORDER BY processed_at DESC, rowid DESC LIMIT 1
	`)

	var meta domain.RunMetadata
	var possibleErrors, failures string
	var processedAt int64
	if err := row.Scan(&meta.RunID, &meta.SourceFile, &meta.TotalHeadnotes, &meta.ParsingFailures,
		&possibleErrors, &failures, &processedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	if err := json.Unmarshal([]byte(possibleErrors), &meta.PossibleErrors); err != nil {
		return nil, fmt.Errorf("unmarshalling possible errors: %w", err)
	}
	if err := json.Unmarshal([]byte(failures), &meta.Errors); err != nil {
		return nil, fmt.Errorf("unmarshalling errors: %w", err)
	}
	meta.ProcessedDate = time.Unix(0, processedAt).UTC()
	return &meta, nil
}

// GetRecord retrieves the first headnote with the given number in a run.
func (s *headnoteStore) GetRecord(ctx context.Context, runID, headnote string) (*domain.HeadnoteRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+headnoteColumns+`
		FROM headnotes h WHERE h.run_id = ? AND h.headnote = ?
		ORDER BY h.position LIMIT 1
	`, runID, headnote)
	if err != nil {
		return nil, fmt.Errorf("querying headnote: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("querying headnote: %w", err)
		}
		return nil, domain.ErrNotFound
	}
	return scanHeadnote(rows)
}

// ListRecords returns matching headnotes, newest run first and document
// order within a run.
func (s *headnoteStore) ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.HeadnoteRecord, error) {
	var (
		where []string
		args  []any
	)
	if filter.RunID != "" {
		where = append(where, "h.run_id = ?")
		args = append(args, filter.RunID)
	}
	if filter.Topic != "" {
		where = append(where, `h.topic LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(filter.Topic))
	}
	if filter.CaseName != "" {
		where = append(where, `h.case_name LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(filter.CaseName))
	}
	if filter.Year != 0 {
		where = append(where, "h.year = ?")
		args = append(args, filter.Year)
	}
	if filter.WarningsOnly {
		where = append(where, "h.warning_count > 0")
	}

	query := `SELECT ` + headnoteColumns + `
		FROM headnotes h JOIN runs r ON r.id = h.run_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY r.processed_at DESC, r.rowid DESC, h.position ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing headnotes: %w", err)
	}
	defer rows.Close()

	var records []domain.HeadnoteRecord
	for rows.Next() {
		rec, err := scanHeadnote(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing headnotes: %w", err)
	}
	return records, nil
}

// scanHeadnote reads one row selected with headnoteColumns.
func scanHeadnote(rows *sql.Rows) (*domain.HeadnoteRecord, error) {
	var rec domain.HeadnoteRecord
	var year sql.NullInt64
	var ors, oar, cases, formatting, errorList string
	if err := rows.Scan(&rec.Headnote, &rec.Topic, &rec.Summary, &rec.CaseName, &rec.Citation, &year,
		&ors, &oar, &cases, &formatting, &errorList, &rec.Index); err != nil {
		return nil, fmt.Errorf("scanning headnote: %w", err)
	}

	if year.Valid {
		y := int(year.Int64)
		rec.Year = &y
	}

	targets := []struct {
		raw string
		dst any
	}{
		{ors, &rec.ORSCites},
		{oar, &rec.OARCites},
		{cases, &rec.CaseCites},
		{formatting, &rec.Formatting},
		{errorList, &rec.ErrorList},
	}
	for _, t := range targets {
		if err := json.Unmarshal([]byte(t.raw), t.dst); err != nil {
			return nil, fmt.Errorf("unmarshalling headnote %s: %w", rec.Headnote, err)
		}
	}
	return &rec, nil
}

// encodeLists marshals the list-valued fields of rec in column order.
func encodeLists(rec *domain.HeadnoteRecord) ([5]string, error) {
	var out [5]string
	values := []any{rec.ORSCites, rec.OARCites, rec.CaseCites, rec.Formatting, rec.ErrorList}
	for i, v := range values {
		s, err := marshalJSON(v, "[]")
		if err != nil {
			return out, err
		}
		out[i] = s
	}
	return out, nil
}

// marshalJSON encodes v, substituting empty for a JSON null.
func marshalJSON(v any, empty string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(data) == jsonNull {
		return empty, nil
	}
	return string(data), nil
}

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// likePattern builds a substring LIKE pattern with wildcards escaped.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// nullInt converts an optional int to a SQL value.
func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
