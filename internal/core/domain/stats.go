package domain

import "time"

// YearRange is the inclusive publication-year span of a collection.
type YearRange struct {
	// Min is the earliest publication year.
	Min int

	// Max is the latest publication year.
	Max int
}

// AxisAnalysis is the detailed breakdown of one thematic axis.
type AxisAnalysis struct {
	// Axis is the analysed thematic axis.
	Axis ThematicAxis

	// Total is the number of studies with this primary axis.
	Total int

	// PeerReviewed counts studies of peer-reviewed types.
	PeerReviewed int

	// GreyLiterature counts policy documents.
	GreyLiterature int

	// QualityDistribution maps each rating present to its count.
	QualityDistribution map[QualityRating]int

	// YearDistribution maps each publication year present to its count.
	YearDistribution map[int]int

	// TypeDistribution maps each study type present to its count.
	TypeDistribution map[StudyType]int

	// Themes are the static theme labels authored for this axis.
	Themes []string
}

// CollectionSummary bundles the descriptive statistics of a collection.
type CollectionSummary struct {
	// Total is the record count.
	Total int

	// Years is the inclusive publication-year span.
	Years YearRange

	// ByAxis maps each axis present to its count.
	ByAxis map[ThematicAxis]int

	// ByQuality maps each rating present to its count.
	ByQuality map[QualityRating]int

	// ByType maps each study type present to its count.
	ByType map[StudyType]int

	// ByYear maps each publication year present to its count.
	ByYear map[int]int

	// ByCountry maps each first-author country present to its count.
	ByCountry map[string]int

	// PeerReviewed counts studies of peer-reviewed types.
	PeerReviewed int
}

// ReportOptions configures Markdown report generation.
type ReportOptions struct {
	// Title overrides the default report title when non-empty.
	Title string

	// Generated, when set, is rendered as the generation timestamp.
	// When nil the report carries no timestamp, so repeated runs over
	// the same collection are byte-identical.
	Generated *time.Time
}
