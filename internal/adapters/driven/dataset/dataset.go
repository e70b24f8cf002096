// Package dataset ships the embedded seed data of the systematic
// literature review and loads study collections from JSON files.
//
// The seed is the set of 52 included studies, embedded at build time so
// the toolkit works with no external files. LoadSeed parses it into a
// validated, insertion-ordered collection.
package dataset

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/FabioLiberti/EHDSLens/internal/adapters/driven/storage/memory"
	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/logger"
)

//go:embed studies.toml
var studiesTOML []byte

type seedFile struct {
	Studies []seedStudy `toml:"studies"`
}

type seedStudy struct {
	ID            int     `toml:"id"`
	Authors       string  `toml:"authors"`
	Title         string  `toml:"title"`
	Journal       string  `toml:"journal"`
	Year          int     `toml:"year"`
	StudyType     string  `toml:"study_type"`
	PrimaryAxis   string  `toml:"primary_axis"`
	QualityRating string  `toml:"quality_rating"`
	DOI           *string `toml:"doi"`
	Country       *string `toml:"country"`
}

func (e seedStudy) toDomain() domain.Study {
	return domain.Study{
		ID:            e.ID,
		Authors:       e.Authors,
		Title:         e.Title,
		Journal:       e.Journal,
		Year:          e.Year,
		StudyType:     domain.StudyType(e.StudyType),
		PrimaryAxis:   domain.ThematicAxis(e.PrimaryAxis),
		QualityRating: domain.QualityRating(e.QualityRating),
		DOI:           e.DOI,
		Country:       e.Country,
	}
}

// SeedStudies parses the embedded seed into domain studies, in
// extraction order. Every record is validated against the enum tags.
func SeedStudies() ([]domain.Study, error) {
	var file seedFile
	if err := toml.Unmarshal(studiesTOML, &file); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	studies := make([]domain.Study, 0, len(file.Studies))
	for _, entry := range file.Studies {
		study := entry.toDomain()
		if err := study.Validate(); err != nil {
			return nil, fmt.Errorf("seed study %d: %w", entry.ID, err)
		}
		studies = append(studies, study)
	}
	return studies, nil
}

// LoadSeed returns a memory store populated with the embedded seed.
func LoadSeed(ctx context.Context) (*memory.StudyStore, error) {
	studies, err := SeedStudies()
	if err != nil {
		return nil, err
	}
	store := memory.NewStudyStore()
	for _, study := range studies {
		if err := store.Add(ctx, study); err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
	}
	logger.Info("Loaded %d seed studies", len(studies))
	return store, nil
}

// LoadJSON reads a study collection from a JSON file, in file order.
// The file holds an array of flat study objects, the same shape the
// JSON export produces.
func LoadJSON(ctx context.Context, path string) (*memory.StudyStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var studies []domain.Study
	if err := json.Unmarshal(data, &studies); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	store := memory.NewStudyStore()
	for _, study := range studies {
		if err := study.Validate(); err != nil {
			return nil, fmt.Errorf("dataset %s, study %d: %w", path, study.ID, err)
		}
		if err := store.Add(ctx, study); err != nil {
			return nil, fmt.Errorf("dataset %s: %w", path, err)
		}
	}
	logger.Info("Loaded %d studies from %s", len(studies), path)
	return store, nil
}
