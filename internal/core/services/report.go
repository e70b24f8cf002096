package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driving"
	"github.com/FabioLiberti/EHDSLens/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// defaultReportTitle heads the Markdown report when no title is supplied.
const defaultReportTitle = "EHDS Systematic Literature Review Analysis Report"

// ReportService renders studies and statistics into external text
// formats. All output is deterministic: the same collection produces
// byte-identical text on every call.
type ReportService struct {
	store driven.StudyStore
	stats driving.StatsService
}

// NewReportService creates a new report service.
func NewReportService(store driven.StudyStore, stats driving.StatsService) *ReportService {
	return &ReportService{store: store, stats: stats}
}

// FormatBibliography renders the given studies, in the given order, as a
// bibliography. BibTeX, RIS, and APA entries are separated by blank
// lines; Vancouver entries form a numbered list where the numeral is the
// record's 1-based position in the sequence, not its stored id.
func (s *ReportService) FormatBibliography(
	_ context.Context, studies []domain.Study, style domain.CitationStyle,
) (string, error) {
	logger.Section("Bibliography")
	logger.Debug("Style: %s, studies: %d", style, len(studies))

	if !style.IsValid() {
		return "", fmt.Errorf("bibliography style %q: %w", style, domain.ErrUnsupportedFormat)
	}

	entries := make([]string, 0, len(studies))
	for i, study := range studies {
		citation, err := study.Citation(style)
		if err != nil {
			return "", fmt.Errorf("bibliography entry %d: %w", study.ID, err)
		}
		if style == domain.StyleVancouver {
			citation = fmt.Sprintf("%d. %s", i+1, citation)
		}
		entries = append(entries, citation)
	}

	separator := "\n\n"
	if style == domain.StyleVancouver {
		separator = "\n"
	}
	return strings.Join(entries, separator), nil
}

// FormatMarkdownReport renders the analysis report with sections in
// fixed order: Summary, one subsection per thematic axis, Quality
// Distribution, GRADE-CERQual findings, and the APA reference list.
// The output embeds no timestamp unless opts.Generated is set.
func (s *ReportService) FormatMarkdownReport(ctx context.Context, opts domain.ReportOptions) (string, error) {
	logger.Section("Markdown Report")

	summary, err := s.stats.Summary(ctx)
	if err != nil {
		return "", fmt.Errorf("markdown report: %w", err)
	}
	studies, err := s.store.All(ctx)
	if err != nil {
		return "", fmt.Errorf("markdown report: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = defaultReportTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)
	if opts.Generated != nil {
		fmt.Fprintf(&b, "\n*Generated: %s*\n", opts.Generated.Format("2006-01-02 15:04"))
	}

	b.WriteString("\n## Summary\n\n")
	fmt.Fprintf(&b, "- Total studies: %d\n", summary.Total)
	fmt.Fprintf(&b, "- Publication years: %d-%d\n", summary.Years.Min, summary.Years.Max)
	fmt.Fprintf(&b, "- Peer-reviewed: %d\n", summary.PeerReviewed)

	b.WriteString("\n## Thematic Axes\n")
	for _, axis := range domain.AllThematicAxes() {
		analysis, err := s.stats.AnalyzeAxis(ctx, axis)
		if err != nil {
			return "", fmt.Errorf("markdown report: %w", err)
		}
		fmt.Fprintf(&b, "\n### %s\n\n", axis.Description())
		fmt.Fprintf(&b, "- Studies: %d\n", analysis.Total)
		b.WriteString("- Quality: " + qualityLine(analysis.QualityDistribution) + "\n")
		if len(analysis.Themes) > 0 {
			b.WriteString("- Themes:\n")
			for _, theme := range analysis.Themes {
				fmt.Fprintf(&b, "  - %s\n", theme)
			}
		}
	}

	b.WriteString("\n## Quality Distribution\n\n")
	b.WriteString("| Rating | Studies |\n")
	b.WriteString("|--------|---------|\n")
	for _, rating := range domain.AllQualityRatings() {
		count, ok := summary.ByQuality[rating]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d |\n", rating.Description(), count)
	}

	findings := s.stats.Findings()
	if len(findings) > 0 {
		b.WriteString("\n## GRADE-CERQual Summary of Findings\n\n")
		b.WriteString("| Finding | Studies | Confidence |\n")
		b.WriteString("|---------|---------|------------|\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "| %s | n=%d | %s |\n",
				f.Statement, f.SupportingStudies, strings.ToUpper(f.Confidence.String()))
		}
	}

	b.WriteString("\n## References\n\n")
	references, err := s.FormatBibliography(ctx, studies, domain.StyleAPA)
	if err != nil {
		return "", fmt.Errorf("markdown report: %w", err)
	}
	b.WriteString(references)
	b.WriteString("\n")

	return b.String(), nil
}

// qualityLine renders a quality distribution on one line, in scale order.
func qualityLine(dist map[domain.QualityRating]int) string {
	if len(dist) == 0 {
		return "none assessed"
	}
	parts := make([]string, 0, len(dist))
	for _, rating := range domain.AllQualityRatings() {
		count, ok := dist[rating]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d", rating, count))
	}
	return strings.Join(parts, ", ")
}

// ExportJSON serialises the collection as an ordered array of flat
// objects in collection order. Absent optional fields are omitted, so
// the export round-trips losslessly.
func (s *ReportService) ExportJSON(ctx context.Context) ([]byte, error) {
	studies, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export json: %w", err)
	}

	data, err := json.MarshalIndent(studies, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export json: %w", err)
	}
	return data, nil
}

// csvHeader is the fixed column order of the CSV export.
var csvHeader = []string{
	"id", "authors", "title", "journal", "year",
	"study_type", "primary_axis", "quality_rating", "doi", "country",
}

// ExportCSV serialises the collection as CSV in collection order.
// Absent optional fields become empty cells.
func (s *ReportService) ExportCSV(ctx context.Context) ([]byte, error) {
	studies, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for _, study := range studies {
		row := []string{
			strconv.Itoa(study.ID),
			study.Authors,
			study.Title,
			study.Journal,
			strconv.Itoa(study.Year),
			study.StudyType.String(),
			study.PrimaryAxis.String(),
			study.QualityRating.String(),
			optionalCell(study.DOI),
			optionalCell(study.Country),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

func optionalCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
