package domain

// GradeCERQualFinding is a synthesized review finding with a
// GRADE-CERQual confidence assessment. Findings are pre-authored
// reference data for the review as a whole; they are never derived
// from the study collection at runtime.
type GradeCERQualFinding struct {
	// Statement is the finding text.
	Statement string

	// Axis is the thematic axis the finding belongs to.
	Axis ThematicAxis

	// Confidence is the overall GRADE-CERQual confidence level.
	Confidence ConfidenceLevel

	// SupportingStudies is the number of studies backing the finding.
	SupportingStudies int

	// Explanation notes what drove the confidence assessment.
	Explanation string
}
