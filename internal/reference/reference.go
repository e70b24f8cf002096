// Package reference serves the review's static reference tables: the
// theme labels per thematic axis and the GRADE-CERQual summary of
// findings. The tables ship as embedded TOML so that updating them is a
// data edit, not a code change, and they stay out of the query engine's
// code path entirely.
package reference

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
)

//go:embed tables.toml
var tablesTOML []byte

// Ensure Tables implements the interface.
var _ driven.ReferenceSource = (*Tables)(nil)

// Tables is the parsed, immutable reference data.
type Tables struct {
	themes   map[domain.ThematicAxis][]string
	findings []domain.GradeCERQualFinding
}

// axisEntry mirrors one [[axes]] block in tables.toml.
type axisEntry struct {
	ID     string   `toml:"id"`
	Themes []string `toml:"themes"`
}

// findingEntry mirrors one [[findings]] block in tables.toml.
type findingEntry struct {
	Statement         string `toml:"statement"`
	Axis              string `toml:"axis"`
	Confidence        string `toml:"confidence"`
	SupportingStudies int    `toml:"supporting_studies"`
	Explanation       string `toml:"explanation"`
}

type tablesFile struct {
	Axes     []axisEntry    `toml:"axes"`
	Findings []findingEntry `toml:"findings"`
}

// Load parses the embedded reference tables.
func Load() (*Tables, error) {
	return parse(tablesTOML)
}

func parse(data []byte) (*Tables, error) {
	var file tablesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing reference tables: %w", err)
	}

	t := &Tables{
		themes: make(map[domain.ThematicAxis][]string, len(file.Axes)),
	}

	for _, entry := range file.Axes {
		axis := domain.ThematicAxis(entry.ID)
		if !axis.IsValid() {
			return nil, fmt.Errorf("reference tables: unknown axis %q: %w", entry.ID, domain.ErrInvalidInput)
		}
		t.themes[axis] = entry.Themes
	}

	for _, entry := range file.Findings {
		axis := domain.ThematicAxis(entry.Axis)
		if !axis.IsValid() {
			return nil, fmt.Errorf("reference tables: unknown axis %q: %w", entry.Axis, domain.ErrInvalidInput)
		}
		confidence := domain.ConfidenceLevel(entry.Confidence)
		if !confidence.IsValid() {
			return nil, fmt.Errorf("reference tables: unknown confidence %q: %w", entry.Confidence, domain.ErrInvalidInput)
		}
		if entry.SupportingStudies < 0 {
			return nil, fmt.Errorf("reference tables: negative study count: %w", domain.ErrInvalidInput)
		}
		t.findings = append(t.findings, domain.GradeCERQualFinding{
			Statement:         entry.Statement,
			Axis:              axis,
			Confidence:        confidence,
			SupportingStudies: entry.SupportingStudies,
			Explanation:       entry.Explanation,
		})
	}

	return t, nil
}

// ThemesForAxis returns the theme labels for an axis in authored order.
func (t *Tables) ThemesForAxis(axis domain.ThematicAxis) []string {
	themes := t.themes[axis]
	out := make([]string, len(themes))
	copy(out, themes)
	return out
}

// Findings returns the GRADE-CERQual findings in authored order.
func (t *Tables) Findings() []domain.GradeCERQualFinding {
	out := make([]domain.GradeCERQualFinding, len(t.findings))
	copy(out, t.findings)
	return out
}
