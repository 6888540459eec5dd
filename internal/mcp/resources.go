// ABOUTME: MCP resource implementations for the tracker store.
// ABOUTME: Provides sporhocam://recent, sporhocam://today, and sporhocam://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sporhocam/sporhocam/internal/models"
)

func (s *Server) registerResources() {
	// sporhocam://recent - last entries across all measurement types
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "sporhocam://recent",
		Name:        "Recent Measurements",
		Description: "Last 10 logged measurements",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// sporhocam://today - all measurements logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "sporhocam://today",
		Name:        "Today's Measurements",
		Description: "All measurements logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// sporhocam://summary - latest of each measurement type
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "sporhocam://summary",
		Name:        "Measurement Summary",
		Description: "Latest value for each measurement type, grouped by domain",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	measurements, err := s.repo.ListMeasurements(nil, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}

	result := map[string]interface{}{
		"measurements": measurements,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "sporhocam://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	measurements, err := s.repo.ListMeasurements(nil, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}

	var today []*models.Measurement
	for _, m := range measurements {
		if !m.RecordedAt.Before(todayStart) {
			today = append(today, m)
		}
	}

	result := map[string]interface{}{
		"date":         todayStart.Format("2006-01-02"),
		"measurements": today,
		"count":        len(today),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "sporhocam://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	latest := make(map[string]interface{})
	for _, mt := range models.AllMeasurementTypes {
		m, err := s.repo.LatestMeasurement(mt)
		if err != nil || m == nil {
			continue
		}
		latest[string(mt)] = map[string]interface{}{
			"value":       m.Value,
			"unit":        m.Unit,
			"recorded_at": m.RecordedAt.Format(time.RFC3339),
			"notes":       m.Notes,
		}
	}

	// Group the latest values by domain
	body := make(map[string]interface{})
	nutrition := make(map[string]interface{})
	activity := make(map[string]interface{})

	bodyTypes := []models.MeasurementType{
		models.MeasurementWeight, models.MeasurementBodyFat, models.MeasurementWaist,
		models.MeasurementNeck, models.MeasurementHip, models.MeasurementChest,
		models.MeasurementBicep, models.MeasurementThigh,
	}
	nutritionTypes := []models.MeasurementType{
		models.MeasurementCalories, models.MeasurementProtein, models.MeasurementCarbs,
		models.MeasurementFat, models.MeasurementWater,
	}
	activityTypes := []models.MeasurementType{
		models.MeasurementSteps,
	}

	for _, mt := range bodyTypes {
		if val, ok := latest[string(mt)]; ok {
			body[string(mt)] = val
		}
	}
	for _, mt := range nutritionTypes {
		if val, ok := latest[string(mt)]; ok {
			nutrition[string(mt)] = val
		}
	}
	for _, mt := range activityTypes {
		if val, ok := latest[string(mt)]; ok {
			activity[string(mt)] = val
		}
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"measurements": map[string]interface{}{
			"body":      body,
			"nutrition": nutrition,
			"activity":  activity,
		},
		"summary": map[string]int{
			"total_measurement_types": len(latest),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "sporhocam://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
