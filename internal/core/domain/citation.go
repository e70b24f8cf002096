package domain

import (
	"fmt"
	"strings"
)

// CitationStyle selects a bibliography output format.
type CitationStyle string

// Available citation styles.
const (
	// StyleBibTeX renders an @article block.
	StyleBibTeX CitationStyle = "bibtex"

	// StyleRIS renders tagged reference-manager lines.
	StyleRIS CitationStyle = "ris"

	// StyleAPA renders an APA-style reference line.
	StyleAPA CitationStyle = "apa"

	// StyleVancouver renders a Vancouver-style reference line.
	// Numbering is applied by the bibliography formatter, not per record.
	StyleVancouver CitationStyle = "vancouver"
)

// IsValid returns true if the citation style is recognised.
func (c CitationStyle) IsValid() bool {
	switch c {
	case StyleBibTeX, StyleRIS, StyleAPA, StyleVancouver:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c CitationStyle) String() string {
	return string(c)
}

// AllCitationStyles returns all supported styles.
func AllCitationStyles() []CitationStyle {
	return []CitationStyle{StyleBibTeX, StyleRIS, StyleAPA, StyleVancouver}
}

// Citation renders the study in the requested style.
// Absent optional fields are omitted from the output entirely.
// An unrecognised style returns ErrUnsupportedFormat, never a fallback.
func (s Study) Citation(style CitationStyle) (string, error) {
	switch style {
	case StyleBibTeX:
		return s.bibtex(), nil
	case StyleRIS:
		return s.ris(), nil
	case StyleAPA:
		return fmt.Sprintf("%s. (%d). %s. %s.", s.Authors, s.Year, s.Title, s.Journal), nil
	case StyleVancouver:
		return fmt.Sprintf("%s. %s. %s. %d.", s.Authors, s.Title, s.Journal, s.Year), nil
	default:
		return "", fmt.Errorf("citation style %q: %w", style, ErrUnsupportedFormat)
	}
}

// CiteKey derives the BibTeX citation key: the first author's surname,
// lowercased with non-alphanumerics stripped, followed by the year.
// The derivation is stable; key collisions are left to the caller.
func (s Study) CiteKey() string {
	first := s.Authors
	if i := strings.IndexByte(first, ','); i >= 0 {
		first = first[:i]
	}
	words := strings.Fields(first)
	surname := ""
	if len(words) > 0 {
		surname = words[len(words)-1]
	}
	var b strings.Builder
	for _, r := range strings.ToLower(surname) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		b.WriteString("anon")
	}
	return fmt.Sprintf("%s%d", b.String(), s.Year)
}

func (s Study) bibtex() string {
	fields := []string{
		fmt.Sprintf("  author = {%s}", s.Authors),
		fmt.Sprintf("  title = {%s}", s.Title),
		fmt.Sprintf("  journal = {%s}", s.Journal),
		fmt.Sprintf("  year = {%d}", s.Year),
	}
	if s.DOI != nil {
		fields = append(fields, fmt.Sprintf("  doi = {%s}", *s.DOI))
	}
	return fmt.Sprintf("@article{%s,\n%s\n}", s.CiteKey(), strings.Join(fields, ",\n"))
}

func (s Study) ris() string {
	lines := []string{
		"TY  - JOUR",
		"AU  - " + s.Authors,
		"TI  - " + s.Title,
		"JO  - " + s.Journal,
		fmt.Sprintf("PY  - %d", s.Year),
	}
	if s.DOI != nil {
		lines = append(lines, "DO  - "+*s.DOI)
	}
	lines = append(lines, "ER  -")
	return strings.Join(lines, "\n")
}
