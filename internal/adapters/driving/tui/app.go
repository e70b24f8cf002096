// Package tui implements the interactive study browser following the
// Elm architecture. Typing filters the collection live; arrow keys move
// the selection and Enter opens the record details.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/FabioLiberti/EHDSLens/internal/adapters/driving/tui/styles"
	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

// visibleRows is how many studies the list shows at once.
const visibleRows = 12

// App is the study browser. It implements tea.Model for use with
// Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	input textinput.Model

	// studies is the current listing: the whole collection while the
	// query is empty, otherwise the search results.
	studies []domain.Study

	// cursor is the selected index into studies.
	cursor int

	// detail is set while a single record is open.
	detail *domain.Study

	err    error
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new study browser with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Search authors, titles, journals..."
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: styles.DefaultStyles(),
		input:  input,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) {
	a.ctx = ctx
}

// Init loads the full collection.
func (a *App) Init() tea.Cmd {
	a.refresh()
	return textinput.Blink
}

// refresh reloads the listing for the current query.
func (a *App) refresh() {
	query := strings.TrimSpace(a.input.Value())
	var err error
	if query == "" {
		a.studies, err = a.ports.Studies.All(a.ctx)
	} else {
		a.studies, err = a.ports.Query.Search(a.ctx, query)
	}
	if err != nil {
		a.err = err
		a.studies = nil
	} else {
		a.err = nil
	}
	if a.cursor >= len(a.studies) {
		a.cursor = 0
	}
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit

		case "q":
			// q closes the detail view; in the list it is part of the query
			if a.detail != nil {
				a.detail = nil
				return a, nil
			}

		case "esc":
			if a.detail != nil {
				a.detail = nil
				return a, nil
			}
			if a.input.Value() != "" {
				a.input.SetValue("")
				a.refresh()
				return a, nil
			}
			return a, tea.Quit

		case "up", "ctrl+k":
			if a.detail == nil && a.cursor > 0 {
				a.cursor--
			}
			return a, nil

		case "down", "ctrl+j":
			if a.detail == nil && a.cursor < len(a.studies)-1 {
				a.cursor++
			}
			return a, nil

		case "enter":
			if a.detail == nil && a.cursor < len(a.studies) {
				study := a.studies[a.cursor]
				a.detail = &study
			}
			return a, nil
		}
	}

	if a.detail != nil {
		return a, nil
	}

	var cmd tea.Cmd
	before := a.input.Value()
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		a.refresh()
	}
	return a, cmd
}

// View renders the browser.
func (a *App) View() string {
	if a.detail != nil {
		return a.detailView()
	}
	return a.listView()
}

func (a *App) listView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("EHDS Literature Review"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n")
	}

	if len(a.studies) == 0 {
		b.WriteString(a.styles.Muted.Render("No studies match."))
		b.WriteString("\n")
	}

	start, end := a.window()
	for i := start; i < end; i++ {
		s := a.studies[i]
		line := fmt.Sprintf("[%2d] %s (%d)", s.ID, s.Title, s.Year)
		if i == a.cursor {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(
		fmt.Sprintf("%d studies  •  ↑/↓ select  •  enter details  •  esc clear  •  ctrl+c quit", len(a.studies))))
	return b.String()
}

// window returns the visible slice bounds, keeping the cursor in view.
func (a *App) window() (int, int) {
	if len(a.studies) <= visibleRows {
		return 0, len(a.studies)
	}
	start := a.cursor - visibleRows/2
	if start < 0 {
		start = 0
	}
	end := start + visibleRows
	if end > len(a.studies) {
		end = len(a.studies)
		start = end - visibleRows
	}
	return start, end
}

func (a *App) detailView() string {
	s := a.detail
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(s.Title))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Subtitle.Render("Record"))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render(fmt.Sprintf("  ID:       %d", s.ID)))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render("  Authors:  " + s.Authors))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render("  Journal:  " + s.Journal))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render(fmt.Sprintf("  Year:     %d", s.Year)))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render("  Type:     " + s.StudyType.Description()))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render("  Axis:     " + s.PrimaryAxis.Description()))
	b.WriteString("\n")
	b.WriteString(a.styles.Normal.Render("  Quality:  " + s.QualityRating.Description()))
	b.WriteString("\n")
	if s.DOI != nil {
		b.WriteString(a.styles.Normal.Render("  DOI:      " + *s.DOI))
		b.WriteString("\n")
	}
	if s.Country != nil {
		b.WriteString(a.styles.Normal.Render("  Country:  " + *s.Country))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("esc/q back  •  ctrl+c quit"))
	return b.String()
}
