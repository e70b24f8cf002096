package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudyType_IsValid_KnownTypes(t *testing.T) {
	for _, st := range AllStudyTypes() {
		assert.True(t, st.IsValid(), "expected %q to be valid", st)
	}
}

func TestStudyType_IsValid_Unknown(t *testing.T) {
	assert.False(t, StudyType("ethnographic").IsValid())
	assert.False(t, StudyType("").IsValid())
}

func TestStudyType_IsPeerReviewed(t *testing.T) {
	assert.True(t, StudyTypeQualitative.IsPeerReviewed())
	assert.True(t, StudyTypeReview.IsPeerReviewed())
	assert.False(t, StudyTypePolicyDocument.IsPeerReviewed())
}

func TestStudyType_Description_Unknown(t *testing.T) {
	assert.Equal(t, "Unknown", StudyType("bogus").Description())
}

func TestThematicAxis_IsValid_KnownAxes(t *testing.T) {
	for _, a := range AllThematicAxes() {
		assert.True(t, a.IsValid(), "expected %q to be valid", a)
	}
}

func TestThematicAxis_IsValid_Unknown(t *testing.T) {
	assert.False(t, ThematicAxis("interoperability").IsValid())
}

func TestAllThematicAxes_FixedReportOrder(t *testing.T) {
	axes := AllThematicAxes()
	assert.Equal(t, []ThematicAxis{
		AxisGovernanceRightsEthics,
		AxisSecondaryUsePETs,
		AxisNationalImplementation,
		AxisCitizenEngagement,
		AxisFederatedLearningAI,
	}, axes)
}

func TestQualityRating_AtLeast_OrderedScale(t *testing.T) {
	assert.True(t, QualityHigh.AtLeast(QualityLow))
	assert.True(t, QualityHigh.AtLeast(QualityHigh))
	assert.True(t, QualityModerate.AtLeast(QualityLow))
	assert.False(t, QualityLow.AtLeast(QualityModerate))
	assert.False(t, QualityModerate.AtLeast(QualityHigh))
}

func TestQualityRating_AtLeast_NotApplicableIsIncomparable(t *testing.T) {
	// not_applicable has no rank: every ordered comparison is false.
	assert.False(t, QualityNotApplicable.AtLeast(QualityLow))
	assert.False(t, QualityNotApplicable.AtLeast(QualityNotApplicable))
	assert.False(t, QualityHigh.AtLeast(QualityNotApplicable))
}

func TestQualityRating_Comparable(t *testing.T) {
	assert.True(t, QualityHigh.Comparable())
	assert.True(t, QualityModerate.Comparable())
	assert.True(t, QualityLow.Comparable())
	assert.False(t, QualityNotApplicable.Comparable())
}

func TestConfidenceLevel_IsValid(t *testing.T) {
	assert.True(t, ConfidenceHigh.IsValid())
	assert.True(t, ConfidenceVeryLow.IsValid())
	assert.False(t, ConfidenceLevel("certain").IsValid())
}
