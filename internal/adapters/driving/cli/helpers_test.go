package cli

import (
	"context"

	"github.com/FabioLiberti/EHDSLens/internal/adapters/driven/filewriter"
	"github.com/FabioLiberti/EHDSLens/internal/adapters/driven/storage/memory"
	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/core/services"
	"github.com/FabioLiberti/EHDSLens/internal/reference"
)

func strPtr(s string) *string { return &s }

// setupTestServices wires the commands to a small fixture collection.
// The returned cleanup restores the unconfigured state.
func setupTestServices() func() {
	store := memory.NewStudyStore()
	studies := []domain.Study{
		{
			ID: 1, Authors: "Kaye, J. et al.", Title: "Dynamic consent",
			Journal: "Eur J Hum Genet", Year: 2015,
			StudyType: domain.StudyTypeTheoretical, PrimaryAxis: domain.AxisGovernanceRightsEthics,
			QualityRating: domain.QualityHigh,
			DOI:           strPtr("10.1038/ejhg.2014.71"), Country: strPtr("UK"),
		},
		{
			ID: 2, Authors: "Rieke, N. et al.", Title: "Future of digital health with federated learning",
			Journal: "npj Digit Med", Year: 2020,
			StudyType: domain.StudyTypeReview, PrimaryAxis: domain.AxisFederatedLearningAI,
			QualityRating: domain.QualityHigh, Country: strPtr("Germany"),
		},
		{
			ID: 3, Authors: "TEHDAS", Title: "Are EU member states ready for EHDS?",
			Journal: "Eur J Public Health", Year: 2024,
			StudyType: domain.StudyTypeMixedMethods, PrimaryAxis: domain.AxisNationalImplementation,
			QualityRating: domain.QualityModerate, Country: strPtr("EU"),
		},
	}
	for _, study := range studies {
		if err := store.Add(context.Background(), study); err != nil {
			panic(err)
		}
	}

	tables, err := reference.Load()
	if err != nil {
		panic(err)
	}

	studyStore = store
	fileWriter = filewriter.NewWriter()
	queryService = services.NewQueryService(store)
	statsService = services.NewStatsService(store, tables)
	reportService = services.NewReportService(store, statsService)

	return func() {
		studyStore = nil
		fileWriter = nil
		queryService = nil
		statsService = nil
		reportService = nil
	}
}
