package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests: parses input, calls the service, formats the result as JSON text.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// UserInput identifies the user a tool reads from.
type UserInput struct {
	UserID int `json:"user_id" jsonschema:"Id of the user"`
}

// LeaderboardInput selects what the leaderboard ranks on.
type LeaderboardInput struct {
	Metric string `json:"metric,omitempty" jsonschema:"Ranking metric: total_workouts (default) or total_minutes"`
}

type leaderboardResult struct {
	Metric  string `json:"metric"`
	Entries any    `json:"entries"`
}

func (h *Handler) GetUserProfileTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		user, err := h.service.UserProfile(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching user profile: " + err.Error()), nil, nil
		}
		return jsonResult(user), nil, nil
	}
}

func (h *Handler) GetWorkoutHistoryTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		history, err := h.service.WorkoutHistory(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching workout history: " + err.Error()), nil, nil
		}
		return jsonResult(history), nil, nil
	}
}

func (h *Handler) GetFriendsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.Friends(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching friends: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) GetGoalsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.Goals(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching goals: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) GetLeaderboardTool() func(context.Context, *mcp.CallToolRequest, LeaderboardInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LeaderboardInput) (*mcp.CallToolResult, any, error) {
		entries, metric, err := h.service.Leaderboard(ctx, in.Metric)
		if err != nil {
			return errorResult("Error fetching leaderboard: " + err.Error()), nil, nil
		}
		return jsonResult(leaderboardResult{Metric: string(metric), Entries: entries}), nil, nil
	}
}

func (h *Handler) GetUserInsightsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		summary, err := h.service.Insights(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching insights: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
