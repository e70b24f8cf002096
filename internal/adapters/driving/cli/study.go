package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

var (
	studyGetJSON  bool
	studyListJSON bool
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Inspect individual studies",
}

var studyGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one study by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudyGet,
}

var studyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every study in the collection",
	RunE:  runStudyList,
}

func init() {
	studyGetCmd.Flags().BoolVar(&studyGetJSON, "json", false, "output the study as JSON")
	studyListCmd.Flags().BoolVar(&studyListJSON, "json", false, "output studies as JSON")
	studyCmd.AddCommand(studyGetCmd)
	studyCmd.AddCommand(studyListCmd)
	rootCmd.AddCommand(studyCmd)
}

func runStudyGet(cmd *cobra.Command, args []string) error {
	if studyStore == nil {
		return errors.New("study store not configured")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid study id %q", args[0])
	}

	study, err := studyStore.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get study failed: %w", err)
	}

	if studyGetJSON {
		return outputStudiesJSON(cmd, []domain.Study{*study})
	}

	cmd.Printf("[%d] %s (%d)\n", study.ID, study.Title, study.Year)
	cmd.Printf("  Authors:  %s\n", study.Authors)
	cmd.Printf("  Journal:  %s\n", study.Journal)
	cmd.Printf("  Type:     %s\n", study.StudyType.Description())
	cmd.Printf("  Axis:     %s\n", study.PrimaryAxis.Description())
	cmd.Printf("  Quality:  %s\n", study.QualityRating.Description())
	if study.DOI != nil {
		cmd.Printf("  DOI:      %s\n", *study.DOI)
	}
	if study.Country != nil {
		cmd.Printf("  Country:  %s\n", *study.Country)
	}
	return nil
}

func runStudyList(cmd *cobra.Command, _ []string) error {
	if studyStore == nil {
		return errors.New("study store not configured")
	}

	studies, err := studyStore.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("list studies failed: %w", err)
	}

	if studyListJSON {
		return outputStudiesJSON(cmd, studies)
	}
	return outputStudiesTable(cmd, studies)
}
