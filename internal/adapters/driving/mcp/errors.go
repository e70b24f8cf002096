// Package mcp provides an MCP (Model Context Protocol) server adapter
// for EHDSLens. It lets AI assistants query the literature review
// collection over stdio or HTTP.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")

// ErrMissingStatsService is returned when the stats service is not provided.
var ErrMissingStatsService = errors.New("mcp: stats service is required")
