package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driving"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/logger"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/segmenter"
)

// Ensure HeadnoteService implements the interface.
var _ driving.HeadnoteService = (*HeadnoteService)(nil)

// HeadnoteService reads a document, segments it and extracts every unit.
type HeadnoteService struct {
	readers   driven.ReaderRegistry
	extractor driven.HeadnoteExtractor
	store     driven.HeadnoteStore
	workers   int
}

// NewHeadnoteService creates a new headnote service.
// The store is optional (can be nil); without it Save, List and Get
// return domain.ErrStoreUnavailable. workers below 1 extracts sequentially.
func NewHeadnoteService(
	readers driven.ReaderRegistry,
	extractor driven.HeadnoteExtractor,
	store driven.HeadnoteStore,
	workers int,
) *HeadnoteService {
	if workers < 1 {
		workers = 1
	}
	return &HeadnoteService{
		readers:   readers,
		extractor: extractor,
		store:     store,
		workers:   workers,
	}
}

// Parse reads the document at path and extracts every headnote unit.
func (s *HeadnoteService) Parse(ctx context.Context, path string) (*domain.ParseResult, error) {
	if s.readers == nil || s.extractor == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Parse " + path)

	paragraphs, err := s.readers.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	logger.Debug("read %d paragraph(s) from %s", len(paragraphs), path)

	units := segmenter.Segment(paragraphs)
	if len(units) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNoHeadnotes)
	}

	records, failures, err := s.extractAll(ctx, units)
	if err != nil {
		return nil, err
	}

	logger.Info("extracted %d headnote(s), %d failure(s)", len(records), len(failures))
	return &domain.ParseResult{
		Source:   path,
		Units:    len(units),
		Records:  records,
		Failures: failures,
	}, nil
}

// slot holds one unit's outcome; exactly one field is set.
type slot struct {
	record  *domain.HeadnoteRecord
	failure *domain.UnitFailure
}

// extractAll runs the extractor over units with at most s.workers in
// flight. Results land in index-addressed slots so output order matches
// document order regardless of completion order.
func (s *HeadnoteService) extractAll(
	ctx context.Context,
	units []domain.HeadnoteUnit,
) ([]domain.HeadnoteRecord, []domain.UnitFailure, error) {
	slots := make([]slot, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range units {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = s.extractOne(i, units[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("extract: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("extract: %w", err)
	}

	records := make([]domain.HeadnoteRecord, 0, len(units))
	var failures []domain.UnitFailure
	for _, sl := range slots {
		switch {
		case sl.record != nil:
			records = append(records, *sl.record)
		case sl.failure != nil:
			failures = append(failures, *sl.failure)
		}
	}
	return records, failures, nil
}

// extractOne extracts a single unit. A panic inside the extractor is
// recorded as a failure for that unit only.
func (s *HeadnoteService) extractOne(index int, unit domain.HeadnoteUnit) (out slot) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("headnote %s (item %d) failed: %v", unit.Number, index, r)
			out = slot{failure: &domain.UnitFailure{
				Index:   index,
				Error:   fmt.Sprint(r),
				Preview: domain.Preview(unit.RawText),
			}}
		}
	}()

	rec := s.extractor.Extract(index, unit)
	return slot{record: &rec}
}

// Save persists a parse result under the given metadata.
func (s *HeadnoteService) Save(ctx context.Context, meta domain.RunMetadata, result *domain.ParseResult) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}
	if result == nil {
		return fmt.Errorf("%w: nil parse result", domain.ErrInvalidInput)
	}
	if err := s.store.SaveRun(ctx, meta, result.Records); err != nil {
		return fmt.Errorf("save run %s: %w", meta.RunID, err)
	}
	return nil
}

// List returns stored headnotes matching the filter. An empty RunID
// selects the latest run; with no runs stored the list is empty.
func (s *HeadnoteService) List(ctx context.Context, filter domain.RecordFilter) ([]domain.HeadnoteRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if filter.RunID == "" {
		latest, err := s.store.LatestRun(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.HeadnoteRecord{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("latest run: %w", err)
		}
		filter.RunID = latest.RunID
	}
	return s.store.ListRecords(ctx, filter)
}

// Get returns one stored headnote. An empty runID selects the latest run.
func (s *HeadnoteService) Get(ctx context.Context, runID, headnote string) (*domain.HeadnoteRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if runID == "" {
		latest, err := s.store.LatestRun(ctx)
		if err != nil {
			return nil, fmt.Errorf("latest run: %w", err)
		}
		runID = latest.RunID
	}
	return s.store.GetRecord(ctx, runID, headnote)
}
