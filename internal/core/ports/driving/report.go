package driving

import (
	"context"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

// ReportService renders studies and statistics into external text formats.
type ReportService interface {
	// FormatBibliography renders per-record citations for the given
	// studies, in the given order, joined by a style-appropriate
	// separator. Vancouver entries are numbered by their 1-based
	// position in the sequence.
	FormatBibliography(ctx context.Context, studies []domain.Study, style domain.CitationStyle) (string, error)

	// FormatMarkdownReport renders the deterministic analysis report.
	FormatMarkdownReport(ctx context.Context, opts domain.ReportOptions) (string, error)

	// ExportJSON serialises the collection as an ordered array of flat
	// objects. Absent optional fields are omitted, and the export
	// round-trips losslessly.
	ExportJSON(ctx context.Context) ([]byte, error)

	// ExportCSV serialises the collection as a header row plus one row
	// per study, in collection order. Absent optionals are empty cells.
	ExportCSV(ctx context.Context) ([]byte, error)
}
