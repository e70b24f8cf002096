package mcp

import (
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driven"
	"github.com/FabioLiberti/EHDSLens/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query provides keyword search and filtering.
	Query driving.QueryService

	// Stats provides collection statistics and findings.
	Stats driving.StatsService

	// Studies provides direct record access by id.
	Studies driven.StudyStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Stats == nil {
		return ErrMissingStatsService
	}
	// Studies is optional; get_study is not registered without it
	return nil
}
