package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabioLiberti/EHDSLens/internal/adapters/driven/storage/memory"
	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/core/services"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	store := memory.NewStudyStore()
	studies := []domain.Study{
		{
			ID: 1, Authors: "Kaye, J. et al.", Title: "Dynamic consent",
			Journal: "Eur J Hum Genet", Year: 2015,
			StudyType: domain.StudyTypeTheoretical, PrimaryAxis: domain.AxisGovernanceRightsEthics,
			QualityRating: domain.QualityHigh,
		},
		{
			ID: 2, Authors: "Rieke, N. et al.", Title: "Future of digital health with federated learning",
			Journal: "npj Digit Med", Year: 2020,
			StudyType: domain.StudyTypeReview, PrimaryAxis: domain.AxisFederatedLearningAI,
			QualityRating: domain.QualityHigh,
		},
	}
	for _, study := range studies {
		require.NoError(t, store.Add(context.Background(), study))
	}

	app, err := NewApp(&Ports{
		Query:   services.NewQueryService(store),
		Studies: store,
	})
	require.NoError(t, err)
	app.Init()
	return app
}

func TestNewApp_RequiresPorts(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingQueryService)
}

func TestApp_InitShowsFullCollection(t *testing.T) {
	app := newTestApp(t)

	view := app.View()

	assert.Contains(t, view, "Dynamic consent")
	assert.Contains(t, view, "federated learning")
	assert.Contains(t, view, "2 studies")
}

func TestApp_TypingFiltersListing(t *testing.T) {
	app := newTestApp(t)

	for _, r := range "federated" {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		app = model.(*App)
	}

	view := app.View()
	assert.Contains(t, view, "federated learning")
	assert.NotContains(t, view, "Dynamic consent")
	assert.Contains(t, view, "1 studies")
}

func TestApp_EnterOpensDetail(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	view := app.View()
	assert.Contains(t, view, "Kaye, J. et al.")
	assert.Contains(t, view, "Eur J Hum Genet")

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Contains(t, app.View(), "2 studies")
}

func TestApp_NavigationMovesCursor(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = model.(*App)
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	assert.Contains(t, app.View(), "Rieke, N. et al.")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
