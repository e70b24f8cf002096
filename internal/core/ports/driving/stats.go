package driving

import (
	"context"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

// StatsService produces descriptive statistics over the study collection.
// Every operation is a pure read: calling it twice on an unmodified
// collection yields identical results.
type StatsService interface {
	// Total returns the record count.
	Total(ctx context.Context) (int, error)

	// YearRange returns the inclusive publication-year span.
	// It returns domain.ErrEmptyCollection on an empty store.
	YearRange(ctx context.Context) (domain.YearRange, error)

	// GroupByAxis maps each thematic axis present in the data to its count.
	GroupByAxis(ctx context.Context) (map[domain.ThematicAxis]int, error)

	// GroupByQuality maps each quality rating present to its count.
	GroupByQuality(ctx context.Context) (map[domain.QualityRating]int, error)

	// GroupByType maps each study type present to its count.
	GroupByType(ctx context.Context) (map[domain.StudyType]int, error)

	// GroupByYear maps each publication year present to its count.
	GroupByYear(ctx context.Context) (map[int]int, error)

	// GroupByCountry maps each first-author country present to its count.
	// Studies without a country are not counted.
	GroupByCountry(ctx context.Context) (map[string]int, error)

	// AnalyzeAxis breaks down the studies of one thematic axis.
	AnalyzeAxis(ctx context.Context, axis domain.ThematicAxis) (*domain.AxisAnalysis, error)

	// Summary bundles the full descriptive statistics of the collection.
	// It returns domain.ErrEmptyCollection on an empty store.
	Summary(ctx context.Context) (*domain.CollectionSummary, error)

	// Findings returns the static GRADE-CERQual summary of findings.
	Findings() []domain.GradeCERQualFinding
}
