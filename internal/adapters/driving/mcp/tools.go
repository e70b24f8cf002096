package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/FabioLiberti/EHDSLens/internal/core/domain"
)

// SearchInput is the input schema for the search_studies tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"keyword to match against authors, title, and journal"`
}

// FilterInput is the input schema for the filter_studies tool.
type FilterInput struct {
	Axis       string `json:"axis,omitempty" jsonschema:"thematic axis tag, e.g. governance_rights_ethics"`
	YearStart  int    `json:"year_start,omitempty" jsonschema:"inclusive lower publication-year bound"`
	YearEnd    int    `json:"year_end,omitempty" jsonschema:"inclusive upper publication-year bound"`
	MinQuality string `json:"min_quality,omitempty" jsonschema:"minimum quality rating: high, moderate, or low"`
	StudyType  string `json:"study_type,omitempty" jsonschema:"study type tag, e.g. qualitative"`
	Country    string `json:"country,omitempty" jsonschema:"first-author country"`
}

// GetStudyInput is the input schema for the get_study tool.
type GetStudyInput struct {
	ID int `json:"id" jsonschema:"the study id"`
}

// StudiesOutput is the output schema for tools that return study lists.
type StudiesOutput struct {
	Studies []StudyOutput `json:"studies"`
	Count   int           `json:"count"`
}

// StudyOutput represents a single study record.
type StudyOutput struct {
	ID            int    `json:"id"`
	Authors       string `json:"authors"`
	Title         string `json:"title"`
	Journal       string `json:"journal"`
	Year          int    `json:"year"`
	StudyType     string `json:"study_type"`
	PrimaryAxis   string `json:"primary_axis"`
	QualityRating string `json:"quality_rating"`
	DOI           string `json:"doi,omitempty"`
	Country       string `json:"country,omitempty"`
}

// StatisticsOutput is the output schema for the get_statistics tool.
type StatisticsOutput struct {
	Total        int            `json:"total"`
	YearMin      int            `json:"year_min"`
	YearMax      int            `json:"year_max"`
	PeerReviewed int            `json:"peer_reviewed"`
	ByAxis       map[string]int `json:"by_axis"`
	ByQuality    map[string]int `json:"by_quality"`
	ByType       map[string]int `json:"by_type"`
	ByCountry    map[string]int `json:"by_country"`
}

// FindingsOutput is the output schema for the get_findings tool.
type FindingsOutput struct {
	Findings []FindingOutput `json:"findings"`
}

// FindingOutput represents a single GRADE-CERQual finding.
type FindingOutput struct {
	Statement         string `json:"statement"`
	Axis              string `json:"axis"`
	Confidence        string `json:"confidence"`
	SupportingStudies int    `json:"supporting_studies"`
	Explanation       string `json:"explanation,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_studies",
		Description: "Search the literature review by keyword across authors, title, and journal",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "filter_studies",
		Description: "Filter the literature review by axis, year range, quality, type, or country",
	}, s.handleFilter)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_statistics",
		Description: "Get descriptive statistics of the study collection",
	}, s.handleStatistics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_findings",
		Description: "Get the GRADE-CERQual summary of findings",
	}, s.handleFindings)

	if s.ports.Studies != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_study",
			Description: "Get one study record by id",
		}, s.handleGetStudy)
	}
}

// handleSearch handles the search_studies tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, StudiesOutput, error) {
	results, err := s.ports.Query.Search(ctx, input.Query)
	if err != nil {
		return nil, StudiesOutput{}, err
	}
	return nil, studiesOutput(results), nil
}

// handleFilter handles the filter_studies tool invocation.
func (s *Server) handleFilter(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FilterInput,
) (*mcp.CallToolResult, StudiesOutput, error) {
	criteria := domain.FilterCriteria{}
	if input.Axis != "" {
		axis := domain.ThematicAxis(input.Axis)
		criteria.Axis = &axis
	}
	if input.YearStart != 0 {
		criteria.YearStart = &input.YearStart
	}
	if input.YearEnd != 0 {
		criteria.YearEnd = &input.YearEnd
	}
	if input.MinQuality != "" {
		quality := domain.QualityRating(input.MinQuality)
		criteria.MinQuality = &quality
	}
	if input.StudyType != "" {
		studyType := domain.StudyType(input.StudyType)
		criteria.StudyType = &studyType
	}
	if input.Country != "" {
		criteria.Country = &input.Country
	}

	results, err := s.ports.Query.Filter(ctx, criteria)
	if err != nil {
		return nil, StudiesOutput{}, err
	}
	return nil, studiesOutput(results), nil
}

// handleStatistics handles the get_statistics tool invocation.
func (s *Server) handleStatistics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatisticsOutput, error) {
	summary, err := s.ports.Stats.Summary(ctx)
	if err != nil {
		return nil, StatisticsOutput{}, err
	}

	output := StatisticsOutput{
		Total:        summary.Total,
		YearMin:      summary.Years.Min,
		YearMax:      summary.Years.Max,
		PeerReviewed: summary.PeerReviewed,
		ByAxis:       make(map[string]int, len(summary.ByAxis)),
		ByQuality:    make(map[string]int, len(summary.ByQuality)),
		ByType:       make(map[string]int, len(summary.ByType)),
		ByCountry:    summary.ByCountry,
	}
	for axis, count := range summary.ByAxis {
		output.ByAxis[axis.String()] = count
	}
	for rating, count := range summary.ByQuality {
		output.ByQuality[rating.String()] = count
	}
	for studyType, count := range summary.ByType {
		output.ByType[studyType.String()] = count
	}
	return nil, output, nil
}

// handleFindings handles the get_findings tool invocation.
func (s *Server) handleFindings(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, FindingsOutput, error) {
	findings := s.ports.Stats.Findings()

	output := FindingsOutput{Findings: make([]FindingOutput, len(findings))}
	for i, f := range findings {
		output.Findings[i] = FindingOutput{
			Statement:         f.Statement,
			Axis:              f.Axis.String(),
			Confidence:        f.Confidence.String(),
			SupportingStudies: f.SupportingStudies,
			Explanation:       f.Explanation,
		}
	}
	return nil, output, nil
}

// handleGetStudy handles the get_study tool invocation.
func (s *Server) handleGetStudy(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetStudyInput,
) (*mcp.CallToolResult, StudyOutput, error) {
	study, err := s.ports.Studies.Get(ctx, input.ID)
	if err != nil {
		return nil, StudyOutput{}, err
	}
	return nil, studyOutput(*study), nil
}

func studiesOutput(studies []domain.Study) StudiesOutput {
	output := StudiesOutput{
		Studies: make([]StudyOutput, len(studies)),
		Count:   len(studies),
	}
	for i, study := range studies {
		output.Studies[i] = studyOutput(study)
	}
	return output
}

func studyOutput(study domain.Study) StudyOutput {
	out := StudyOutput{
		ID:            study.ID,
		Authors:       study.Authors,
		Title:         study.Title,
		Journal:       study.Journal,
		Year:          study.Year,
		StudyType:     study.StudyType.String(),
		PrimaryAxis:   study.PrimaryAxis.String(),
		QualityRating: study.QualityRating.String(),
	}
	if study.DOI != nil {
		out.DOI = *study.DOI
	}
	if study.Country != nil {
		out.Country = *study.Country
	}
	return out
}
