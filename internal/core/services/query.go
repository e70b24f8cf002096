package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driving"
	"github.com/FabioLiberti/EHDSLens/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService provides keyword search and multi-criteria filtering,
// read-only over a study store.
type QueryService struct {
	store driven.StudyStore
}

// NewQueryService creates a new query service.
func NewQueryService(store driven.StudyStore) *QueryService {
	return &QueryService{store: store}
}

// Search performs a case-insensitive substring match against the
// authors, title, and journal fields. A study matches when the query
// appears in ANY of the three fields; the fields are never joined, so a
// query spanning two fields does not match. An empty or whitespace-only
// query returns no results.
func (s *QueryService) Search(ctx context.Context, query string) ([]domain.Study, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.Study{}, nil
	}

	studies, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	needle := strings.ToLower(query)
	results := make([]domain.Study, 0)
	for _, study := range studies {
		if strings.Contains(strings.ToLower(study.Authors), needle) ||
			strings.Contains(strings.ToLower(study.Title), needle) ||
			strings.Contains(strings.ToLower(study.Journal), needle) {
			results = append(results, study)
		}
	}

	logger.Info("Search results: %d of %d studies", len(results), len(studies))
	return results, nil
}

// Filter returns the studies satisfying every supplied criterion.
// Omitted criteria impose no constraint. Results keep the collection's
// insertion order; filtering never reorders or duplicates.
func (s *QueryService) Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Study, error) {
	logger.Section("Filter Execution")

	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("filter criteria: %w", err)
	}

	studies, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}

	results := make([]domain.Study, 0)
	for _, study := range studies {
		if matchesCriteria(study, criteria) {
			results = append(results, study)
		}
	}

	logger.Info("Filter results: %d of %d studies", len(results), len(studies))
	return results, nil
}

// matchesCriteria applies AND semantics across the supplied predicates.
func matchesCriteria(s domain.Study, c domain.FilterCriteria) bool {
	if c.Axis != nil && s.PrimaryAxis != *c.Axis {
		return false
	}
	if c.YearStart != nil && s.Year < *c.YearStart {
		return false
	}
	if c.YearEnd != nil && s.Year > *c.YearEnd {
		return false
	}
	if c.MinQuality != nil && !s.QualityRating.AtLeast(*c.MinQuality) {
		return false
	}
	if c.StudyType != nil && s.StudyType != *c.StudyType {
		return false
	}
	if c.Country != nil {
		if s.Country == nil || !strings.EqualFold(*s.Country, *c.Country) {
			return false
		}
	}
	return true
}
