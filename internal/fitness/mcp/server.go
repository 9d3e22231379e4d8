package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only fittrack tools: profile, workouts, friends,
// goals, leaderboard and insights. Used over stdio by cmd/fittrack_mcp and mounted at /mcp by the API.
func NewServer(gateway FitnessGateway) *mcp.Server {
	h := NewHandler(NewContextService(gateway))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_user_profile",
		Description: "Returns a user's profile (id, name, email, weight in kg). Arg: user_id.",
	}, h.GetUserProfileTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_history",
		Description: "Returns all workouts of a user, newest first, each with its exercises (name, sets, reps, weight lifted). Arg: user_id.",
	}, h.GetWorkoutHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_friends",
		Description: "Returns the users the given user has added as friends. Arg: user_id.",
	}, h.GetFriendsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_goals",
		Description: "Returns a user's goals with their completion status. Arg: user_id.",
	}, h.GetGoalsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_leaderboard",
		Description: "Ranks all users by total_workouts (default) or total_minutes. Optional arg: metric.",
	}, h.GetLeaderboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_user_insights",
		Description: "Returns count, sum, average, min and max of a user's workout durations in minutes. Arg: user_id.",
	}, h.GetUserInsightsTool())

	return s
}

// HTTPHandler serves the given MCP server over streamable HTTP.
func HTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
