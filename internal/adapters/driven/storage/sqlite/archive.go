package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
	"github.com/FabioLiberti/EHDSLens/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS studies (
	position INTEGER PRIMARY KEY,
	id INTEGER NOT NULL UNIQUE,
	authors TEXT NOT NULL,
	title TEXT NOT NULL,
	journal TEXT NOT NULL,
	year INTEGER NOT NULL,
	study_type TEXT NOT NULL,
	primary_axis TEXT NOT NULL,
	quality_rating TEXT NOT NULL,
	doi TEXT,
	country TEXT
)`

// Archive is a SQLite-backed durable copy of a study collection.
// Save and Load move whole snapshots; the archive is not a live store.
type Archive struct {
	db   *sql.DB
	path string
}

// NewArchive opens (or creates) the archive database at path, creating
// parent directories as needed.
func NewArchive(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating studies table: %w", err)
	}

	return &Archive{db: db, path: path}, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Path returns the database file path.
func (a *Archive) Path() string {
	return a.path
}

// Save replaces the archived collection with the given snapshot,
// preserving its order. The replacement is transactional: on error the
// previous contents survive intact.
func (a *Archive) Save(ctx context.Context, studies []domain.Study) error {
	logger.Section("Archive Save")

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM studies"); err != nil {
		return fmt.Errorf("clearing studies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO studies (position, id, authors, title, journal, year,
			study_type, primary_axis, quality_rating, doi, country)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for pos, study := range studies {
		_, err := stmt.ExecContext(ctx, pos, study.ID, study.Authors, study.Title,
			study.Journal, study.Year, study.StudyType.String(),
			study.PrimaryAxis.String(), study.QualityRating.String(),
			nullString(study.DOI), nullString(study.Country))
		if err != nil {
			return fmt.Errorf("inserting study %d: %w", study.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	logger.Info("Archived %d studies to %s", len(studies), a.path)
	return nil
}

// Load returns the archived collection in its saved order.
func (a *Archive) Load(ctx context.Context) ([]domain.Study, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, authors, title, journal, year,
			study_type, primary_axis, quality_rating, doi, country
		FROM studies ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying studies: %w", err)
	}
	defer rows.Close()

	var studies []domain.Study
	for rows.Next() {
		var (
			study        domain.Study
			doi, country sql.NullString
		)
		err := rows.Scan(&study.ID, &study.Authors, &study.Title, &study.Journal,
			&study.Year, &study.StudyType, &study.PrimaryAxis,
			&study.QualityRating, &doi, &country)
		if err != nil {
			return nil, fmt.Errorf("scanning study: %w", err)
		}
		study.DOI = stringPtr(doi)
		study.Country = stringPtr(country)
		if err := study.Validate(); err != nil {
			return nil, fmt.Errorf("archived study %d: %w", study.ID, err)
		}
		studies = append(studies, study)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating studies: %w", err)
	}
	return studies, nil
}

// nullString converts an optional field to a nullable SQL value.
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// stringPtr converts a nullable SQL value back to an optional field.
func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
