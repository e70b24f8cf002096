package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/adapters/driven/storage/sqlite"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the study collection",
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export the collection as JSON",
	RunE:  runExportJSON,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the collection as CSV",
	RunE:  runExportCSV,
}

var exportSQLiteCmd = &cobra.Command{
	Use:   "sqlite",
	Short: "Archive the collection to a SQLite database",
	RunE:  runExportSQLite,
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "output file path")
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportSQLiteCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportJSON(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	data, err := reportService.ExportJSON(cmd.Context())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return writeExport(cmd, data)
}

func runExportCSV(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	data, err := reportService.ExportCSV(cmd.Context())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return writeExport(cmd, data)
}

func runExportSQLite(cmd *cobra.Command, _ []string) error {
	if studyStore == nil {
		return errors.New("study store not configured")
	}
	if exportOutput == "" {
		return errors.New("sqlite export requires --output")
	}

	studies, err := studyStore.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	archive, err := sqlite.NewArchive(exportOutput)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	defer archive.Close()

	if err := archive.Save(cmd.Context(), studies); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Archived %d studies to %s\n", len(studies), exportOutput)
	return nil
}

func writeExport(cmd *cobra.Command, data []byte) error {
	if exportOutput == "" {
		cmd.Println(string(data))
		return nil
	}
	if err := fileWriter.Write(cmd.Context(), exportOutput, data); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Export written to %s\n", exportOutput)
	return nil
}
