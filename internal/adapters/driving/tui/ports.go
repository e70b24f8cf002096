package tui

import (
	"errors"

	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driving"
)

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("tui: query service is required")

// ErrMissingStudyStore is returned when the study store is not provided.
var ErrMissingStudyStore = errors.New("tui: study store is required")

// Ports aggregates the port interfaces required by the study browser.
type Ports struct {
	// Query provides live keyword search.
	Query driving.QueryService

	// Studies provides the full collection for the initial listing.
	Studies driven.StudyStore
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Studies == nil {
		return ErrMissingStudyStore
	}
	return nil
}
