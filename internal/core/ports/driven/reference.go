package driven

import (
	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

// ReferenceSource supplies the review's static reference data: the
// free-text theme labels per thematic axis and the pre-authored
// GRADE-CERQual summary of findings. This is configuration, not
// computation; implementations load it once and serve it unchanged.
type ReferenceSource interface {
	// ThemesForAxis returns the theme labels for an axis, in authored
	// order. Unknown axes yield an empty slice.
	ThemesForAxis(axis domain.ThematicAxis) []string

	// Findings returns the GRADE-CERQual findings in authored order.
	Findings() []domain.GradeCERQualFinding
}
