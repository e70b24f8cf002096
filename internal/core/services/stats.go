package services

import (
	"context"
	"fmt"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driving"
	"github.com/FabioLiberti/EHDSLens/internal/logger"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService produces grouped counts and ranges over a study store.
// Groupings include only values present in the data; zero-count enum
// values are omitted, consistently across every grouping.
type StatsService struct {
	store     driven.StudyStore
	reference driven.ReferenceSource
}

// NewStatsService creates a new statistics service.
func NewStatsService(store driven.StudyStore, reference driven.ReferenceSource) *StatsService {
	return &StatsService{store: store, reference: reference}
}

// Total returns the record count.
func (s *StatsService) Total(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// YearRange returns the inclusive publication-year span.
// min/max over an empty collection is undefined, so an empty store is an error.
func (s *StatsService) YearRange(ctx context.Context) (domain.YearRange, error) {
	studies, err := s.store.All(ctx)
	if err != nil {
		return domain.YearRange{}, fmt.Errorf("year range: %w", err)
	}
	if len(studies) == 0 {
		return domain.YearRange{}, fmt.Errorf("year range: %w", domain.ErrEmptyCollection)
	}

	yr := domain.YearRange{Min: studies[0].Year, Max: studies[0].Year}
	for _, study := range studies[1:] {
		if study.Year < yr.Min {
			yr.Min = study.Year
		}
		if study.Year > yr.Max {
			yr.Max = study.Year
		}
	}
	return yr, nil
}

// GroupByAxis maps each thematic axis present in the data to its count.
func (s *StatsService) GroupByAxis(ctx context.Context) (map[domain.ThematicAxis]int, error) {
	return groupBy(ctx, s.store, func(st domain.Study) (domain.ThematicAxis, bool) {
		return st.PrimaryAxis, true
	})
}

// GroupByQuality maps each quality rating present to its count.
func (s *StatsService) GroupByQuality(ctx context.Context) (map[domain.QualityRating]int, error) {
	return groupBy(ctx, s.store, func(st domain.Study) (domain.QualityRating, bool) {
		return st.QualityRating, true
	})
}

// GroupByType maps each study type present to its count.
func (s *StatsService) GroupByType(ctx context.Context) (map[domain.StudyType]int, error) {
	return groupBy(ctx, s.store, func(st domain.Study) (domain.StudyType, bool) {
		return st.StudyType, true
	})
}

// GroupByYear maps each publication year present to its count.
func (s *StatsService) GroupByYear(ctx context.Context) (map[int]int, error) {
	return groupBy(ctx, s.store, func(st domain.Study) (int, bool) {
		return st.Year, true
	})
}

// GroupByCountry maps each first-author country present to its count.
// Studies without a country are not counted.
func (s *StatsService) GroupByCountry(ctx context.Context) (map[string]int, error) {
	return groupBy(ctx, s.store, func(st domain.Study) (string, bool) {
		if st.Country == nil {
			return "", false
		}
		return *st.Country, true
	})
}

// groupBy tallies studies by the selected field. The selector's second
// return value excludes a study from the tally (absent optional fields).
func groupBy[K comparable](
	ctx context.Context, store driven.StudyStore, selector func(domain.Study) (K, bool),
) (map[K]int, error) {
	studies, err := store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("group by: %w", err)
	}

	counts := make(map[K]int)
	for _, study := range studies {
		key, ok := selector(study)
		if !ok {
			continue
		}
		counts[key]++
	}
	return counts, nil
}

// AnalyzeAxis restricts to one thematic axis and breaks it down by
// quality, year, and type, attaching the axis's static theme labels.
func (s *StatsService) AnalyzeAxis(ctx context.Context, axis domain.ThematicAxis) (*domain.AxisAnalysis, error) {
	logger.Section("Axis Analysis")
	logger.Debug("Axis: %s", axis)

	if !axis.IsValid() {
		return nil, fmt.Errorf("analyze axis %q: %w", axis, domain.ErrInvalidInput)
	}

	studies, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze axis: %w", err)
	}

	analysis := &domain.AxisAnalysis{
		Axis:                axis,
		QualityDistribution: make(map[domain.QualityRating]int),
		YearDistribution:    make(map[int]int),
		TypeDistribution:    make(map[domain.StudyType]int),
		Themes:              s.reference.ThemesForAxis(axis),
	}

	for _, study := range studies {
		if study.PrimaryAxis != axis {
			continue
		}
		analysis.Total++
		if study.StudyType.IsPeerReviewed() {
			analysis.PeerReviewed++
		} else {
			analysis.GreyLiterature++
		}
		analysis.QualityDistribution[study.QualityRating]++
		analysis.YearDistribution[study.Year]++
		analysis.TypeDistribution[study.StudyType]++
	}

	logger.Info("Axis %s: %d studies", axis, analysis.Total)
	return analysis, nil
}

// Summary bundles the descriptive statistics of the whole collection.
func (s *StatsService) Summary(ctx context.Context) (*domain.CollectionSummary, error) {
	studies, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if len(studies) == 0 {
		return nil, fmt.Errorf("summary: %w", domain.ErrEmptyCollection)
	}

	summary := &domain.CollectionSummary{
		Total:     len(studies),
		Years:     domain.YearRange{Min: studies[0].Year, Max: studies[0].Year},
		ByAxis:    make(map[domain.ThematicAxis]int),
		ByQuality: make(map[domain.QualityRating]int),
		ByType:    make(map[domain.StudyType]int),
		ByYear:    make(map[int]int),
		ByCountry: make(map[string]int),
	}

	for _, study := range studies {
		summary.ByAxis[study.PrimaryAxis]++
		summary.ByQuality[study.QualityRating]++
		summary.ByType[study.StudyType]++
		summary.ByYear[study.Year]++
		if study.Country != nil {
			summary.ByCountry[*study.Country]++
		}
		if study.StudyType.IsPeerReviewed() {
			summary.PeerReviewed++
		}
		if study.Year < summary.Years.Min {
			summary.Years.Min = study.Year
		}
		if study.Year > summary.Years.Max {
			summary.Years.Max = study.Year
		}
	}

	return summary, nil
}

// Findings returns the static GRADE-CERQual summary of findings.
func (s *StatsService) Findings() []domain.GradeCERQualFinding {
	return s.reference.Findings()
}
