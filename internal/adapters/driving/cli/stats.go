package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Long: `Summarises the study collection: totals, publication-year span, and
breakdowns by thematic axis, quality rating, study type, year, and country.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	summary, err := statsService.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	if statsJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Total studies:     %d\n", summary.Total)
	cmd.Printf("Publication years: %d-%d\n", summary.Years.Min, summary.Years.Max)
	cmd.Printf("Peer-reviewed:     %d\n", summary.PeerReviewed)

	cmd.Println("\nBy thematic axis:")
	for _, axis := range domain.AllThematicAxes() {
		if count, ok := summary.ByAxis[axis]; ok {
			cmd.Printf("  %-28s %d\n", axis, count)
		}
	}

	cmd.Println("\nBy quality rating:")
	for _, rating := range domain.AllQualityRatings() {
		if count, ok := summary.ByQuality[rating]; ok {
			cmd.Printf("  %-28s %d\n", rating, count)
		}
	}

	cmd.Println("\nBy study type:")
	for _, studyType := range domain.AllStudyTypes() {
		if count, ok := summary.ByType[studyType]; ok {
			cmd.Printf("  %-28s %d\n", studyType, count)
		}
	}

	cmd.Println("\nBy year:")
	years := make([]int, 0, len(summary.ByYear))
	for year := range summary.ByYear {
		years = append(years, year)
	}
	sort.Ints(years)
	for _, year := range years {
		cmd.Printf("  %-28d %d\n", year, summary.ByYear[year])
	}

	cmd.Println("\nBy country:")
	countries := make([]string, 0, len(summary.ByCountry))
	for country := range summary.ByCountry {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	for _, country := range countries {
		cmd.Printf("  %-28s %d\n", country, summary.ByCountry[country])
	}

	return nil
}
