package domain

// Study represents a single bibliographic entry in the systematic review.
// It is the canonical record shape shared by every layer.
type Study struct {
	// ID is the unique identifier, assigned at extraction and immutable.
	ID int `json:"id"`

	// Authors is the free-form author list, e.g. "Kaye, J. et al.".
	Authors string `json:"authors"`

	// Title is the full title of the study.
	Title string `json:"title"`

	// Journal is the journal or source name.
	Journal string `json:"journal"`

	// Year is the publication year.
	Year int `json:"year"`

	// StudyType is the methodology classification.
	StudyType StudyType `json:"study_type"`

	// PrimaryAxis is the main thematic focus.
	PrimaryAxis ThematicAxis `json:"primary_axis"`

	// QualityRating is the MMAT quality assessment.
	QualityRating QualityRating `json:"quality_rating"`

	// DOI is the Digital Object Identifier. Nil when the study has none.
	DOI *string `json:"doi,omitempty"`

	// Country is the first author's affiliation country. Nil when unknown.
	Country *string `json:"country,omitempty"`
}

// Validate checks that the study satisfies the record invariants.
func (s Study) Validate() error {
	if s.ID <= 0 {
		return ErrInvalidInput
	}
	if s.Authors == "" || s.Title == "" {
		return ErrInvalidInput
	}
	if !s.StudyType.IsValid() || !s.PrimaryAxis.IsValid() || !s.QualityRating.IsValid() {
		return ErrInvalidInput
	}
	return nil
}

// PlainMap returns a flat key/value view of the study with enum fields
// rendered as their canonical tags. Absent optional fields are omitted,
// never emitted as empty strings.
func (s Study) PlainMap() map[string]any {
	m := map[string]any{
		"id":             s.ID,
		"authors":        s.Authors,
		"title":          s.Title,
		"journal":        s.Journal,
		"year":           s.Year,
		"study_type":     s.StudyType.String(),
		"primary_axis":   s.PrimaryAxis.String(),
		"quality_rating": s.QualityRating.String(),
	}
	if s.DOI != nil {
		m["doi"] = *s.DOI
	}
	if s.Country != nil {
		m["country"] = *s.Country
	}
	return m
}

// FilterCriteria is a set of optional study predicates. Nil fields impose
// no constraint; supplied fields combine with AND.
type FilterCriteria struct {
	// Axis matches studies whose primary axis equals the given axis.
	Axis *ThematicAxis

	// YearStart is the inclusive lower publication-year bound.
	YearStart *int

	// YearEnd is the inclusive upper publication-year bound.
	YearEnd *int

	// MinQuality is the inclusive lower bound on the ordered quality
	// scale. Studies rated not_applicable never satisfy it.
	MinQuality *QualityRating

	// StudyType matches studies of the given methodology.
	StudyType *StudyType

	// Country matches the first-author country, case-insensitively.
	// Studies without a country never match.
	Country *string
}

// Validate checks that every supplied predicate carries a recognised value.
func (c FilterCriteria) Validate() error {
	if c.Axis != nil && !c.Axis.IsValid() {
		return ErrInvalidInput
	}
	if c.MinQuality != nil && !c.MinQuality.Comparable() {
		return ErrInvalidInput
	}
	if c.StudyType != nil && !c.StudyType.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
