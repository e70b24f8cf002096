package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var findingsJSON bool

var findingsCmd = &cobra.Command{
	Use:   "findings",
	Short: "Show the GRADE-CERQual summary of findings",
	RunE:  runFindings,
}

func init() {
	findingsCmd.Flags().BoolVar(&findingsJSON, "json", false, "output findings as JSON")
	rootCmd.AddCommand(findingsCmd)
}

func runFindings(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	findings := statsService.Findings()

	if findingsJSON {
		data, err := json.MarshalIndent(findings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal findings: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("GRADE-CERQual Summary of Findings:")
	cmd.Println()
	for i, f := range findings {
		cmd.Printf("  [%d] %s\n", i+1, f.Statement)
		cmd.Printf("      axis: %s, studies: n=%d, confidence: %s\n",
			f.Axis, f.SupportingStudies, strings.ToUpper(f.Confidence.String()))
		if f.Explanation != "" {
			cmd.Printf("      %s\n", f.Explanation)
		}
		cmd.Println()
	}
	return nil
}
