package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

var (
	filterAxis       string
	filterYearStart  int
	filterYearEnd    int
	filterMinQuality string
	filterType       string
	filterCountry    string
	filterJSON       bool
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter studies by criteria",
	Long: `Filters the study collection. Every supplied criterion must hold for a
study to be included; omitted criteria impose no constraint. Results keep
the collection's order.`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&filterAxis, "axis", "", "thematic axis tag")
	filterCmd.Flags().IntVar(&filterYearStart, "year-start", 0, "inclusive lower publication-year bound")
	filterCmd.Flags().IntVar(&filterYearEnd, "year-end", 0, "inclusive upper publication-year bound")
	filterCmd.Flags().StringVar(&filterMinQuality, "min-quality", "", "minimum quality rating (high, moderate, low)")
	filterCmd.Flags().StringVar(&filterType, "type", "", "study type tag")
	filterCmd.Flags().StringVar(&filterCountry, "country", "", "first-author country")
	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	criteria := domain.FilterCriteria{}
	if filterAxis != "" {
		axis := domain.ThematicAxis(filterAxis)
		criteria.Axis = &axis
	}
	if filterYearStart != 0 {
		criteria.YearStart = &filterYearStart
	}
	if filterYearEnd != 0 {
		criteria.YearEnd = &filterYearEnd
	}
	if filterMinQuality != "" {
		quality := domain.QualityRating(filterMinQuality)
		criteria.MinQuality = &quality
	}
	if filterType != "" {
		studyType := domain.StudyType(filterType)
		criteria.StudyType = &studyType
	}
	if filterCountry != "" {
		criteria.Country = &filterCountry
	}

	results, err := queryService.Filter(cmd.Context(), criteria)
	if err != nil {
		return fmt.Errorf("filter failed: %w", err)
	}

	if filterJSON {
		return outputStudiesJSON(cmd, results)
	}
	return outputStudiesTable(cmd, results)
}
