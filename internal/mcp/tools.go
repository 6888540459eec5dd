// ABOUTME: MCP tool implementations for measurements, trends, and search.
// ABOUTME: Exposes the tracker's core operations over the MCP protocol.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sporhocam/sporhocam/internal/models"
	"github.com/sporhocam/sporhocam/internal/stats"
)

func (s *Server) registerTools() {
	// log_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_measurement",
		Description: "Record a body or nutrition measurement (weight, body_fat, calories, etc.)",
	}, s.handleLogMeasurement)

	// list_measurements
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_measurements",
		Description: "List recent measurements, optionally filtered by type",
	}, s.handleListMeasurements)

	// delete_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_measurement",
		Description: "Delete a measurement by ID or ID prefix",
	}, s.handleDeleteMeasurement)

	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Analyze the trend of a measurement type over a time window",
	}, s.handleGetTrend)

	// search_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_exercises",
		Description: "Search the seeded exercise catalog by name",
	}, s.handleSearchExercises)

	// search_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_foods",
		Description: "Search the seeded food catalog by name or alias",
	}, s.handleSearchFoods)

	// get_latest
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_latest",
		Description: "Get the most recent value for one or more measurement types",
	}, s.handleGetLatest)
}

// Tool input/output types

type logMeasurementInput struct {
	MeasurementType string  `json:"measurement_type" jsonschema:"Type of measurement (weight, body_fat, waist, neck, hip, chest, bicep, thigh, calories, protein, carbs, fat, water, steps)"`
	Value           float64 `json:"value" jsonschema:"The measurement value"`
	RecordedAt      string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Notes           string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type measurementOutput struct {
	ID              string  `json:"id"`
	MeasurementType string  `json:"measurement_type"`
	Value           float64 `json:"value"`
	Unit            string  `json:"unit"`
	Message         string  `json:"message"`
}

type listMeasurementsInput struct {
	MeasurementType string `json:"measurement_type,omitempty" jsonschema:"Filter by measurement type"`
	Limit           int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteMeasurementInput struct {
	ID string `json:"id" jsonschema:"Measurement ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type getTrendInput struct {
	MeasurementType string `json:"measurement_type" jsonschema:"Measurement type to analyze"`
	Days            int    `json:"days,omitempty" jsonschema:"Look-back window in days (default 30)"`
}

type trendOutput struct {
	Direction     string   `json:"direction"`
	Mean          float64  `json:"mean"`
	Median        float64  `json:"median"`
	Volatility    float64  `json:"volatility"`
	PercentChange float64  `json:"percent_change"`
	RSquared      float64  `json:"r_squared"`
	FitQuality    string   `json:"fit_quality"`
	Prediction    *float64 `json:"prediction,omitempty"`
	Count         int      `json:"count"`
}

type searchInput struct {
	Query string `json:"query" jsonschema:"Name or partial name to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type getLatestInput struct {
	MeasurementTypes []string `json:"measurement_types,omitempty" jsonschema:"List of measurement types to get latest values for"`
}

// Tool handlers

func (s *Server) handleLogMeasurement(ctx context.Context, req *mcp.CallToolRequest, input logMeasurementInput) (*mcp.CallToolResult, measurementOutput, error) {
	if !models.IsValidMeasurementType(input.MeasurementType) {
		return nil, measurementOutput{}, fmt.Errorf("unknown measurement type: %s", input.MeasurementType)
	}

	m := models.NewMeasurement(models.MeasurementType(input.MeasurementType), input.Value)

	if input.RecordedAt != "" {
		t, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			t, err = time.Parse("2006-01-02 15:04", input.RecordedAt)
		}
		if err == nil {
			m.WithRecordedAt(t)
		}
	}

	if input.Notes != "" {
		m.WithNotes(input.Notes)
	}

	if err := s.repo.CreateMeasurement(m); err != nil {
		return nil, measurementOutput{}, fmt.Errorf("failed to create measurement: %w", err)
	}

	return nil, measurementOutput{
		ID:              m.ID.String()[:8],
		MeasurementType: input.MeasurementType,
		Value:           m.Value,
		Unit:            m.Unit,
		Message:         fmt.Sprintf("Logged %s: %.2f %s (ID: %s)", input.MeasurementType, m.Value, m.Unit, m.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListMeasurements(ctx context.Context, req *mcp.CallToolRequest, input listMeasurementsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var measurementType *models.MeasurementType
	if input.MeasurementType != "" {
		mt := models.MeasurementType(input.MeasurementType)
		measurementType = &mt
	}

	measurements, err := s.repo.ListMeasurements(measurementType, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list measurements: %w", err)
	}

	if len(measurements) == 0 {
		return nil, map[string]interface{}{"message": "No measurements found."}, nil
	}

	return nil, measurements, nil
}

func (s *Server) handleDeleteMeasurement(ctx context.Context, req *mcp.CallToolRequest, input deleteMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteMeasurement(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete measurement: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted measurement: %s", input.ID),
	}, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input getTrendInput) (*mcp.CallToolResult, trendOutput, error) {
	if !models.IsValidMeasurementType(input.MeasurementType) {
		return nil, trendOutput{}, fmt.Errorf("unknown measurement type: %s", input.MeasurementType)
	}
	if input.Days <= 0 {
		input.Days = 30
	}

	since := time.Now().AddDate(0, 0, -input.Days)
	series, err := s.repo.MeasurementSeries(models.MeasurementType(input.MeasurementType), since)
	if err != nil {
		return nil, trendOutput{}, fmt.Errorf("failed to load series: %w", err)
	}

	points := make([]stats.DataPoint, len(series))
	for i, m := range series {
		points[i] = stats.DataPoint{Date: m.RecordedAt, Value: m.Value}
	}

	trend := stats.Analyze(points)
	return nil, trendOutput{
		Direction:     string(trend.Direction),
		Mean:          trend.Mean,
		Median:        trend.Median,
		Volatility:    trend.Volatility,
		PercentChange: trend.PercentChange,
		RSquared:      trend.RSquared,
		FitQuality:    string(trend.FitQuality()),
		Prediction:    trend.Prediction,
		Count:         trend.Count,
	}, nil
}

func (s *Server) handleSearchExercises(ctx context.Context, req *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}

	exercises, err := s.repo.SearchExercises(input.Query, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search exercises: %w", err)
	}

	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}

	return nil, exercises, nil
}

func (s *Server) handleSearchFoods(ctx context.Context, req *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}

	foods, err := s.repo.SearchFoods(input.Query, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search foods: %w", err)
	}

	if len(foods) == 0 {
		return nil, map[string]interface{}{"message": "No foods found."}, nil
	}

	return nil, foods, nil
}

func (s *Server) handleGetLatest(ctx context.Context, req *mcp.CallToolRequest, input getLatestInput) (*mcp.CallToolResult, any, error) {
	// If no types specified, get all
	types := input.MeasurementTypes
	if len(types) == 0 {
		for _, mt := range models.AllMeasurementTypes {
			types = append(types, string(mt))
		}
	}

	results := make(map[string]interface{})
	for _, t := range types {
		m, err := s.repo.LatestMeasurement(models.MeasurementType(t))
		if err == nil && m != nil {
			results[t] = map[string]interface{}{
				"value":       m.Value,
				"unit":        m.Unit,
				"recorded_at": m.RecordedAt,
			}
		}
	}

	return nil, results, nil
}
