package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// Ensure HeadnoteStore implements the interface.
var _ driven.HeadnoteStore = (*HeadnoteStore)(nil)

// storedRun is one saved run with its records in document order.
type storedRun struct {
	meta    domain.RunMetadata
	records []domain.HeadnoteRecord
	seq     int
}

// HeadnoteStore is an in-memory implementation of driven.HeadnoteStore.
// It backs tests and parse runs with persistence disabled.
type HeadnoteStore struct {
	mu   sync.RWMutex
	runs map[string]*storedRun
	seq  int
}

// NewHeadnoteStore creates a new in-memory headnote store.
func NewHeadnoteStore() *HeadnoteStore {
	return &HeadnoteStore{
		runs: make(map[string]*storedRun),
	}
}

// SaveRun stores a run, replacing any run with the same ID.
func (s *HeadnoteStore) SaveRun(_ context.Context, meta domain.RunMetadata, records []domain.HeadnoteRecord) error {
	if meta.RunID == "" {
		return domain.ErrInvalidInput
	}
	cp := make([]domain.HeadnoteRecord, len(records))
	copy(cp, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.runs[meta.RunID] = &storedRun{meta: meta, records: cp, seq: s.seq}
	return nil
}

// LatestRun returns the run with the most recent processed date.
func (s *HeadnoteStore) LatestRun(_ context.Context) (*domain.RunMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ordered := s.orderedRuns()
	if len(ordered) == 0 {
		return nil, domain.ErrNotFound
	}
	meta := ordered[0].meta
	return &meta, nil
}

// GetRecord retrieves the first headnote with the given number in a run.
func (s *HeadnoteStore) GetRecord(_ context.Context, runID, headnote string) (*domain.HeadnoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for i := range run.records {
		if run.records[i].Headnote == headnote {
			rec := run.records[i]
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListRecords returns matching headnotes, newest run first.
func (s *HeadnoteStore) ListRecords(_ context.Context, filter domain.RecordFilter) ([]domain.HeadnoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.HeadnoteRecord
	for _, run := range s.orderedRuns() {
		if filter.RunID != "" && run.meta.RunID != filter.RunID {
			continue
		}
		for i := range run.records {
			if !filter.Matches(&run.records[i]) {
				continue
			}
			result = append(result, run.records[i])
			if filter.Limit > 0 && len(result) == filter.Limit {
				return result, nil
			}
		}
	}
	return result, nil
}

// orderedRuns sorts runs newest first; ties go to the later save.
// Caller must hold the lock.
func (s *HeadnoteStore) orderedRuns() []*storedRun {
	runs := make([]*storedRun, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, r)
	}
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].meta.ProcessedDate.Equal(runs[j].meta.ProcessedDate) {
			return runs[i].meta.ProcessedDate.After(runs[j].meta.ProcessedDate)
		}
		return runs[i].seq > runs[j].seq
	})
	return runs
}
