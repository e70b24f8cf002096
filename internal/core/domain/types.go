package domain

const unknownDescription = "Unknown"

// StudyType classifies a study's methodology.
type StudyType string

// Available study types. The set is closed: new methodologies are added
// here, never as free-form strings.
const (
	// StudyTypeQualitative covers interview, focus-group and case studies.
	StudyTypeQualitative StudyType = "qualitative"

	// StudyTypeQuantitative covers surveys and statistical analyses.
	StudyTypeQuantitative StudyType = "quantitative"

	// StudyTypeMixedMethods combines qualitative and quantitative components.
	StudyTypeMixedMethods StudyType = "mixed_methods"

	// StudyTypeTheoretical covers conceptual and framework papers.
	StudyTypeTheoretical StudyType = "theoretical"

	// StudyTypeReview covers systematic and scoping reviews.
	StudyTypeReview StudyType = "review"

	// StudyTypePolicyDocument covers position papers and regulatory texts.
	StudyTypePolicyDocument StudyType = "policy_document"

	// StudyTypeTechnical covers architecture and implementation papers.
	StudyTypeTechnical StudyType = "technical"
)

// IsValid returns true if the study type is recognised.
func (t StudyType) IsValid() bool {
	switch t {
	case StudyTypeQualitative, StudyTypeQuantitative, StudyTypeMixedMethods,
		StudyTypeTheoretical, StudyTypeReview, StudyTypePolicyDocument,
		StudyTypeTechnical:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t StudyType) String() string {
	return string(t)
}

// Description returns a human-readable description of the type.
func (t StudyType) Description() string {
	switch t {
	case StudyTypeQualitative:
		return "Qualitative"
	case StudyTypeQuantitative:
		return "Quantitative"
	case StudyTypeMixedMethods:
		return "Mixed Methods"
	case StudyTypeTheoretical:
		return "Theoretical/Conceptual"
	case StudyTypeReview:
		return "Systematic/Scoping Review"
	case StudyTypePolicyDocument:
		return "Policy Document"
	case StudyTypeTechnical:
		return "Technical"
	default:
		return unknownDescription
	}
}

// IsPeerReviewed reports whether studies of this type count as
// peer-reviewed literature. Policy documents are grey literature.
func (t StudyType) IsPeerReviewed() bool {
	return t != StudyTypePolicyDocument
}

// AllStudyTypes returns all study types in canonical order.
func AllStudyTypes() []StudyType {
	return []StudyType{
		StudyTypeQualitative,
		StudyTypeQuantitative,
		StudyTypeMixedMethods,
		StudyTypeTheoretical,
		StudyTypeReview,
		StudyTypePolicyDocument,
		StudyTypeTechnical,
	}
}

// ThematicAxis identifies one of the five thematic axes of the review.
type ThematicAxis string

// The five thematic axes, in fixed report order.
const (
	// AxisGovernanceRightsEthics covers governance, rights and ethics.
	AxisGovernanceRightsEthics ThematicAxis = "governance_rights_ethics"

	// AxisSecondaryUsePETs covers secondary use and privacy-enhancing technologies.
	AxisSecondaryUsePETs ThematicAxis = "secondary_use_pets"

	// AxisNationalImplementation covers Member State implementation readiness.
	AxisNationalImplementation ThematicAxis = "national_implementation"

	// AxisCitizenEngagement covers citizen attitudes and participation.
	AxisCitizenEngagement ThematicAxis = "citizen_engagement"

	// AxisFederatedLearningAI covers federated learning and AI governance.
	AxisFederatedLearningAI ThematicAxis = "federated_learning_ai"
)

// IsValid returns true if the axis is recognised.
func (a ThematicAxis) IsValid() bool {
	switch a {
	case AxisGovernanceRightsEthics, AxisSecondaryUsePETs,
		AxisNationalImplementation, AxisCitizenEngagement,
		AxisFederatedLearningAI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (a ThematicAxis) String() string {
	return string(a)
}

// Description returns a human-readable description of the axis.
func (a ThematicAxis) Description() string {
	switch a {
	case AxisGovernanceRightsEthics:
		return "Governance, Rights, and Ethics"
	case AxisSecondaryUsePETs:
		return "Secondary Use and PETs"
	case AxisNationalImplementation:
		return "National Implementation"
	case AxisCitizenEngagement:
		return "Citizen Engagement"
	case AxisFederatedLearningAI:
		return "Federated Learning and AI"
	default:
		return unknownDescription
	}
}

// AllThematicAxes returns the five axes in fixed report order.
func AllThematicAxes() []ThematicAxis {
	return []ThematicAxis{
		AxisGovernanceRightsEthics,
		AxisSecondaryUsePETs,
		AxisNationalImplementation,
		AxisCitizenEngagement,
		AxisFederatedLearningAI,
	}
}

// QualityRating is an MMAT-based quality assessment category.
type QualityRating string

// Available quality ratings.
const (
	// QualityHigh means at least 80% of MMAT criteria were met.
	QualityHigh QualityRating = "high"

	// QualityModerate means 60-79% of MMAT criteria were met.
	QualityModerate QualityRating = "moderate"

	// QualityLow means under 60% of MMAT criteria were met.
	QualityLow QualityRating = "low"

	// QualityNotApplicable marks studies outside the MMAT scale,
	// such as regulatory texts. It has no position on the ordered scale.
	QualityNotApplicable QualityRating = "not_applicable"
)

// qualityRank places the ordered ratings on an explicit scale.
// QualityNotApplicable is deliberately absent: it is incomparable.
var qualityRank = map[QualityRating]int{
	QualityHigh:     3,
	QualityModerate: 2,
	QualityLow:      1,
}

// IsValid returns true if the rating is recognised.
func (q QualityRating) IsValid() bool {
	switch q {
	case QualityHigh, QualityModerate, QualityLow, QualityNotApplicable:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (q QualityRating) String() string {
	return string(q)
}

// Description returns a human-readable description of the rating.
func (q QualityRating) Description() string {
	switch q {
	case QualityHigh:
		return "High (≥80% criteria met)"
	case QualityModerate:
		return "Moderate (60-79% criteria met)"
	case QualityLow:
		return "Low (<60% criteria met)"
	case QualityNotApplicable:
		return "Not applicable"
	default:
		return unknownDescription
	}
}

// Comparable reports whether the rating sits on the ordered scale.
func (q QualityRating) Comparable() bool {
	_, ok := qualityRank[q]
	return ok
}

// AtLeast reports whether q is on the ordered scale and ranks at or
// above min. Any comparison involving QualityNotApplicable is false.
func (q QualityRating) AtLeast(min QualityRating) bool {
	qr, ok := qualityRank[q]
	if !ok {
		return false
	}
	mr, ok := qualityRank[min]
	if !ok {
		return false
	}
	return qr >= mr
}

// AllQualityRatings returns all ratings, ordered scale first.
func AllQualityRatings() []QualityRating {
	return []QualityRating{
		QualityHigh,
		QualityModerate,
		QualityLow,
		QualityNotApplicable,
	}
}

// ConfidenceLevel is a GRADE-CERQual confidence assessment.
type ConfidenceLevel string

// Available confidence levels.
const (
	// ConfidenceHigh indicates the finding is highly likely to reflect the phenomenon.
	ConfidenceHigh ConfidenceLevel = "high"

	// ConfidenceModerate indicates the finding is likely to reflect the phenomenon.
	ConfidenceModerate ConfidenceLevel = "moderate"

	// ConfidenceLow indicates the finding is possibly a reasonable representation.
	ConfidenceLow ConfidenceLevel = "low"

	// ConfidenceVeryLow indicates it is unclear whether the finding holds.
	ConfidenceVeryLow ConfidenceLevel = "very_low"
)

// IsValid returns true if the confidence level is recognised.
func (c ConfidenceLevel) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceModerate, ConfidenceLow, ConfidenceVeryLow:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c ConfidenceLevel) String() string {
	return string(c)
}
