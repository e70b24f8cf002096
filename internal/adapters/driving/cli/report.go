package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

var (
	reportOutput    string
	reportTitle     string
	reportTimestamp bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the Markdown analysis report",
	Long: `Renders the full analysis report as Markdown: collection summary, one
section per thematic axis, quality distribution, the GRADE-CERQual
summary of findings, and the APA reference list. Output is deterministic
unless --timestamp is given.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "write the report to a file")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "override the report title")
	reportCmd.Flags().BoolVar(&reportTimestamp, "timestamp", false, "embed the generation time")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	opts := domain.ReportOptions{Title: reportTitle}
	if reportTimestamp {
		now := time.Now()
		opts.Generated = &now
	}

	out, err := reportService.FormatMarkdownReport(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	if reportOutput != "" {
		if err := fileWriter.Write(cmd.Context(), reportOutput, []byte(out)); err != nil {
			return fmt.Errorf("report failed: %w", err)
		}
		cmd.Printf("Report written to %s\n", reportOutput)
		return nil
	}
	cmd.Println(out)
	return nil
}
