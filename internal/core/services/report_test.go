package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabioLiberti/EHDSLens/internal/adapters/driven/storage/memory"
	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/reference"
)

// newReportService wires a ReportService over the fixture studies.
func newReportService(t *testing.T) *ReportService {
	t.Helper()
	tables, err := reference.Load()
	require.NoError(t, err)
	store := newFixtureStore(t)
	return NewReportService(store, NewStatsService(store, tables))
}

func TestReportService_FormatBibliography_BibTeXSeparatedByBlankLine(t *testing.T) {
	svc := newReportService(t)
	studies := fixtureStudies()

	out, err := svc.FormatBibliography(context.Background(), studies, domain.StyleBibTeX)

	require.NoError(t, err)
	entries := strings.Split(out, "\n\n")
	require.Len(t, entries, 3)
	assert.True(t, strings.HasPrefix(entries[0], "@article{kaye2022,"))
	assert.True(t, strings.HasPrefix(entries[1], "@article{j2023,"))
	// Study 2 has no DOI, so its entry carries no doi line.
	assert.NotContains(t, entries[1], "doi")
}

func TestReportService_FormatBibliography_RISEntriesTerminate(t *testing.T) {
	svc := newReportService(t)

	out, err := svc.FormatBibliography(context.Background(), fixtureStudies(), domain.StyleRIS)

	require.NoError(t, err)
	for _, entry := range strings.Split(out, "\n\n") {
		assert.True(t, strings.HasSuffix(entry, "ER  -"))
	}
}

func TestReportService_FormatBibliography_VancouverNumbersByPosition(t *testing.T) {
	svc := newReportService(t)
	studies := fixtureStudies()
	// Reverse the sequence so position and stored id disagree.
	reversed := []domain.Study{studies[2], studies[1], studies[0]}

	out, err := svc.FormatBibliography(context.Background(), reversed, domain.StyleVancouver)

	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1. European Commission. European Health Data Space regulation explained. EU Publications. 2024.", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2. Smith J, Doe A."))
	assert.True(t, strings.HasPrefix(lines[2], "3. Kaye, J. et al.."))
}

func TestReportService_FormatBibliography_RejectsUnknownStyle(t *testing.T) {
	svc := newReportService(t)

	_, err := svc.FormatBibliography(context.Background(), fixtureStudies(), domain.CitationStyle("chicago"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestReportService_FormatBibliography_EmptyInput(t *testing.T) {
	svc := newReportService(t)

	out, err := svc.FormatBibliography(context.Background(), nil, domain.StyleAPA)

	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestReportService_FormatMarkdownReport_SectionsInFixedOrder(t *testing.T) {
	svc := newReportService(t)

	out, err := svc.FormatMarkdownReport(context.Background(), domain.ReportOptions{})

	require.NoError(t, err)
	sections := []string{
		"## Summary",
		"## Thematic Axes",
		"### Governance, Rights, and Ethics",
		"## Quality Distribution",
		"## GRADE-CERQual Summary of Findings",
		"## References",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestReportService_FormatMarkdownReport_IsDeterministic(t *testing.T) {
	svc := newReportService(t)
	opts := domain.ReportOptions{Title: "EHDS Review"}

	first, err := svc.FormatMarkdownReport(context.Background(), opts)
	require.NoError(t, err)
	second, err := svc.FormatMarkdownReport(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "# EHDS Review\n"))
	assert.NotContains(t, first, "Generated:")
}

func TestReportService_FormatMarkdownReport_TimestampOnlyWhenRequested(t *testing.T) {
	svc := newReportService(t)
	generated := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	out, err := svc.FormatMarkdownReport(context.Background(), domain.ReportOptions{Generated: &generated})

	require.NoError(t, err)
	assert.Contains(t, out, "*Generated: 2026-08-29 10:30*")
}

func TestReportService_FormatMarkdownReport_EmptyCollection(t *testing.T) {
	tables, err := reference.Load()
	require.NoError(t, err)
	store := memory.NewStudyStore()
	svc := NewReportService(store, NewStatsService(store, tables))

	_, err = svc.FormatMarkdownReport(context.Background(), domain.ReportOptions{})

	assert.ErrorIs(t, err, domain.ErrEmptyCollection)
}

func TestReportService_ExportJSON_RoundTripsLosslessly(t *testing.T) {
	svc := newReportService(t)

	data, err := svc.ExportJSON(context.Background())

	require.NoError(t, err)
	var decoded []domain.Study
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, fixtureStudies(), decoded)
}

func TestReportService_ExportJSON_OmitsAbsentOptionals(t *testing.T) {
	svc := newReportService(t)

	data, err := svc.ExportJSON(context.Background())

	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 3)
	assert.Contains(t, raw[0], "doi")
	assert.NotContains(t, raw[1], "doi")
	assert.NotContains(t, raw[2], "country")
}

func TestReportService_ExportCSV(t *testing.T) {
	svc := newReportService(t)

	data, err := svc.ExportCSV(context.Background())

	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "10.1038/ejhg.2014.71", rows[1][8])
	// Nil optionals become empty cells.
	assert.Equal(t, "", rows[2][8])
	assert.Equal(t, "", rows[3][9])
}
