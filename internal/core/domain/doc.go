// Package domain defines the core business entities for EHDSLens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Study: One bibliographic entry from the systematic review
//   - StudyType, ThematicAxis, QualityRating: Closed classification enums
//   - GradeCERQualFinding: A pre-authored confidence-assessed finding
//   - FilterCriteria: Multi-predicate study filter
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
