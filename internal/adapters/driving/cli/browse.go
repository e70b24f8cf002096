package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FabioLiberti/EHDSLens/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive study browser",
	Long: `Launch the interactive terminal browser for the study collection.

Type to search across authors, titles, and journals; the listing updates
as you type.

Controls:
  ↑/↓      - Navigate studies
  Enter    - Open record details
  Esc      - Clear search / Back
  Ctrl+C   - Quit`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	// Panic recovery to get stack traces out of the alt screen
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if queryService == nil || studyStore == nil {
		return errors.New("services not configured")
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the browser requires an interactive terminal")
	}

	app, err := tui.NewApp(&tui.Ports{
		Query:   queryService,
		Studies: studyStore,
	})
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
