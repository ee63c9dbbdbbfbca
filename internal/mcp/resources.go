// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fittrack://dashboard, fittrack://today, and fittrack://settings resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/views"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://dashboard - Stats, goal progress and the weekly chart
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://dashboard",
		Name:        "Fitness Dashboard",
		Description: "Today's stats with goal progress and the weekly chart",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// fittrack://today - Everything logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://today",
		Name:        "Today's Log",
		Description: "Exercises, meals and water logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fittrack://settings - Goals, preferences and profile
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://settings",
		Name:        "Settings",
		Description: "Current goals, notification preferences and profile",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var result map[string]interface{}
	s.session.Read(func(snap session.Snapshot) {
		result = map[string]interface{}{
			"generated_at": snap.Now.Format(time.RFC3339),
			"dashboard":    views.StatsSummary(snap.State, snap.Now),
			"weekly":       views.WeeklyChart(snap.State),
		}
	})
	return jsonResource("fittrack://dashboard", result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var result map[string]interface{}
	s.session.Read(func(snap session.Snapshot) {
		exercises := snap.State.ExercisesOn(snap.Today)
		meals := snap.State.MealsOn(snap.Today)
		result = map[string]interface{}{
			"date":      snap.Today,
			"exercises": exercises,
			"meals":     meals,
			"water":     snap.State.Water[snap.Today],
			"counts": map[string]int{
				"exercises": len(exercises),
				"meals":     len(meals),
			},
		}
	})
	return jsonResource("fittrack://today", result)
}

func (s *Server) handleSettingsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var result interface{}
	s.session.Read(func(snap session.Snapshot) {
		result = snap.State.Settings
	})
	return jsonResource("fittrack://settings", result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
