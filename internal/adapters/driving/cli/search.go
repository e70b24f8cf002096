package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search studies by keyword",
	Long: `Performs a case-insensitive substring search across the authors, title,
and journal fields of every study. A study matches when the query appears
in any one of the three fields.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	results, err := queryService.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputStudiesJSON(cmd, results)
	}
	return outputStudiesTable(cmd, results)
}

func outputStudiesJSON(cmd *cobra.Command, studies []domain.Study) error {
	data, err := json.MarshalIndent(studies, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal studies: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputStudiesTable(cmd *cobra.Command, studies []domain.Study) error {
	if len(studies) == 0 {
		cmd.Println("No studies found.")
		return nil
	}

	cmd.Printf("Studies (%d):\n\n", len(studies))
	for _, s := range studies {
		cmd.Printf("  [%d] %s (%d)\n", s.ID, s.Title, s.Year)
		cmd.Printf("      %s - %s\n", s.Authors, s.Journal)
		cmd.Printf("      axis: %s, type: %s, quality: %s\n", s.PrimaryAxis, s.StudyType, s.QualityRating)
		cmd.Println()
	}
	return nil
}
