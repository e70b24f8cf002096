// Package cli implements the command-line interface for EHDSLens.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FabioLiberti/EHDSLens/internal/adapters/driven/dataset"
	"github.com/FabioLiberti/EHDSLens/internal/adapters/driven/filewriter"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driving"
	"github.com/FabioLiberti/EHDSLens/internal/core/services"
	"github.com/FabioLiberti/EHDSLens/internal/logger"
	"github.com/FabioLiberti/EHDSLens/internal/reference"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	datasetFlag string
)

// Services driving the commands. Wired by initServices on first run;
// tests swap them directly.
var (
	studyStore    driven.StudyStore
	fileWriter    driven.FileWriter
	queryService  driving.QueryService
	statsService  driving.StatsService
	reportService driving.ReportService
)

var rootCmd = &cobra.Command{
	Use:   "ehdslens",
	Short: "Explore the EHDS systematic literature review",
	Long: `EHDSLens is an analysis toolkit for a systematic literature review of
the European Health Data Space. It searches, filters, and summarises the
included studies, renders GRADE-CERQual findings, and exports
bibliographies and reports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&datasetFlag, "dataset", "", "load studies from a JSON file instead of the embedded review")
}

// initServices wires the default adapters. It is a no-op when services
// are already configured, which is how tests inject fixtures.
func initServices(ctx context.Context) error {
	if queryService != nil && statsService != nil && reportService != nil {
		return nil
	}

	if studyStore == nil {
		var err error
		if datasetFlag != "" {
			studyStore, err = dataset.LoadJSON(ctx, datasetFlag)
		} else {
			studyStore, err = dataset.LoadSeed(ctx)
		}
		if err != nil {
			return fmt.Errorf("loading studies: %w", err)
		}
	}

	tables, err := reference.Load()
	if err != nil {
		return fmt.Errorf("loading reference tables: %w", err)
	}

	if fileWriter == nil {
		fileWriter = filewriter.NewWriter()
	}
	queryService = services.NewQueryService(studyStore)
	statsService = services.NewStatsService(studyStore, tables)
	reportService = services.NewReportService(studyStore, statsService)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
