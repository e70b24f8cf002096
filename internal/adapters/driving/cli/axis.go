package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

var axisJSON bool

var axisCmd = &cobra.Command{
	Use:   "axis [tag]",
	Short: "Analyse one thematic axis",
	Long: `Breaks down the studies of a single thematic axis: totals, peer-review
split, and distributions by quality, year, and type, plus the themes
identified for the axis.

Valid tags: governance_rights_ethics, secondary_use_pets,
national_implementation, citizen_engagement, federated_learning_ai.`,
	Args: cobra.ExactArgs(1),
	RunE: runAxis,
}

func init() {
	axisCmd.Flags().BoolVar(&axisJSON, "json", false, "output analysis as JSON")
	rootCmd.AddCommand(axisCmd)
}

func runAxis(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	analysis, err := statsService.AnalyzeAxis(cmd.Context(), domain.ThematicAxis(args[0]))
	if err != nil {
		return fmt.Errorf("axis analysis failed: %w", err)
	}

	if axisJSON {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s\n\n", analysis.Axis.Description())
	cmd.Printf("Studies:         %d\n", analysis.Total)
	cmd.Printf("Peer-reviewed:   %d\n", analysis.PeerReviewed)
	cmd.Printf("Grey literature: %d\n", analysis.GreyLiterature)

	cmd.Println("\nQuality:")
	for _, rating := range domain.AllQualityRatings() {
		if count, ok := analysis.QualityDistribution[rating]; ok {
			cmd.Printf("  %-16s %d\n", rating, count)
		}
	}

	cmd.Println("\nYears:")
	years := make([]int, 0, len(analysis.YearDistribution))
	for year := range analysis.YearDistribution {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		cmd.Printf("  %-16d %d\n", year, analysis.YearDistribution[year])
	}

	if len(analysis.Themes) > 0 {
		cmd.Println("\nThemes:")
		for _, theme := range analysis.Themes {
			cmd.Printf("  - %s\n", theme)
		}
	}
	return nil
}
