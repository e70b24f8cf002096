// Package memory provides the in-memory study store.
//
// This is the canonical StudyStore: the whole dataset lives in memory for
// the lifetime of the session. The store keeps insertion order for
// deterministic reports and a side index for constant-time id lookups.
// It holds no locks; the toolkit is single-threaded by contract and any
// embedder sharing a store across goroutines must synchronise externally.
package memory

import (
	"context"
	"fmt"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
)

// Ensure StudyStore implements the interface.
var _ driven.StudyStore = (*StudyStore)(nil)

// StudyStore is an in-memory implementation of driven.StudyStore.
type StudyStore struct {
	studies []domain.Study
	byID    map[int]int // id -> position in studies
}

// NewStudyStore creates an empty in-memory study store.
func NewStudyStore() *StudyStore {
	return &StudyStore{
		byID: make(map[int]int),
	}
}

// Add appends a study and indexes it by id.
// A duplicate id fails the add and leaves the collection unchanged.
func (s *StudyStore) Add(_ context.Context, study domain.Study) error {
	if err := study.Validate(); err != nil {
		return fmt.Errorf("add study: %w", err)
	}
	if _, exists := s.byID[study.ID]; exists {
		return fmt.Errorf("add study %d: %w", study.ID, domain.ErrDuplicateID)
	}
	s.byID[study.ID] = len(s.studies)
	s.studies = append(s.studies, study)
	return nil
}

// Get retrieves a study by id.
func (s *StudyStore) Get(_ context.Context, id int) (*domain.Study, error) {
	pos, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	study := s.studies[pos]
	return &study, nil
}

// All returns a snapshot of the collection in insertion order.
func (s *StudyStore) All(_ context.Context) ([]domain.Study, error) {
	snapshot := make([]domain.Study, len(s.studies))
	copy(snapshot, s.studies)
	return snapshot, nil
}

// Count returns the number of studies stored.
func (s *StudyStore) Count(_ context.Context) (int, error) {
	return len(s.studies), nil
}
