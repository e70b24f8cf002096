package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

var bibOutput string

var bibCmd = &cobra.Command{
	Use:   "bib [style]",
	Short: "Format the bibliography",
	Long: `Renders the full collection as a bibliography in the given citation
style. Supported styles: bibtex, ris, apa, vancouver.`,
	Args: cobra.ExactArgs(1),
	RunE: runBib,
}

func init() {
	bibCmd.Flags().StringVarP(&bibOutput, "output", "o", "", "write the bibliography to a file")
	rootCmd.AddCommand(bibCmd)
}

func runBib(cmd *cobra.Command, args []string) error {
	if reportService == nil || studyStore == nil {
		return errors.New("report service not configured")
	}

	studies, err := studyStore.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("bibliography failed: %w", err)
	}

	out, err := reportService.FormatBibliography(cmd.Context(), studies, domain.CitationStyle(args[0]))
	if err != nil {
		return fmt.Errorf("bibliography failed: %w", err)
	}

	if bibOutput != "" {
		if err := fileWriter.Write(cmd.Context(), bibOutput, []byte(out+"\n")); err != nil {
			return fmt.Errorf("bibliography failed: %w", err)
		}
		cmd.Printf("Bibliography written to %s\n", bibOutput)
		return nil
	}
	cmd.Println(out)
	return nil
}
