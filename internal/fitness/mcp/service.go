package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/fitness/friends"
	"github.com/2beens/fittrack/internal/fitness/goals"
	"github.com/2beens/fittrack/internal/fitness/insights"
	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/fitness/workouts"
	"github.com/2beens/fittrack/internal/store"
)

// FitnessGateway is the read side of the persistence gateway the tools are served from.
type FitnessGateway interface {
	ReadUser(ctx context.Context, id int) (*users.User, error)
	ReadWorkouts(ctx context.Context, userID int) ([]workouts.Workout, error)
	ListFriends(ctx context.Context, userID int) ([]friends.Friend, error)
	ListGoals(ctx context.Context, userID int) ([]goals.Goal, error)
	Leaderboard(ctx context.Context, metric insights.Metric) ([]insights.LeaderboardEntry, error)
	UserInsights(ctx context.Context, userID int) (*insights.UserInsights, error)
}

// contextService is what the Handler needs; kept as an interface for tests.
type contextService interface {
	UserProfile(ctx context.Context, userID int) (*users.User, error)
	WorkoutHistory(ctx context.Context, userID int) ([]workouts.Workout, error)
	Friends(ctx context.Context, userID int) ([]friends.Friend, error)
	Goals(ctx context.Context, userID int) ([]goals.Goal, error)
	Leaderboard(ctx context.Context, metric string) ([]insights.LeaderboardEntry, insights.Metric, error)
	Insights(ctx context.Context, userID int) (*InsightsSummary, error)
}

// InsightsSummary is a user's workout statistics, zeroed when nothing is logged yet.
type InsightsSummary struct {
	insights.UserInsights
	HasWorkouts bool `json:"hasWorkouts"`
}

// ContextService answers tool calls from the gateway.
type ContextService struct {
	gateway FitnessGateway
}

func NewContextService(gateway FitnessGateway) *ContextService {
	return &ContextService{
		gateway: gateway,
	}
}

// UserProfile returns the profile of an existing user.
func (s *ContextService) UserProfile(ctx context.Context, userID int) (*users.User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user id must be positive: %w", store.ErrInvalidInput)
	}
	return s.gateway.ReadUser(ctx, userID)
}

// WorkoutHistory returns the user's workouts, newest first.
func (s *ContextService) WorkoutHistory(ctx context.Context, userID int) ([]workouts.Workout, error) {
	if _, err := s.UserProfile(ctx, userID); err != nil {
		return nil, err
	}
	return s.gateway.ReadWorkouts(ctx, userID)
}

func (s *ContextService) Friends(ctx context.Context, userID int) ([]friends.Friend, error) {
	if _, err := s.UserProfile(ctx, userID); err != nil {
		return nil, err
	}
	return s.gateway.ListFriends(ctx, userID)
}

func (s *ContextService) Goals(ctx context.Context, userID int) ([]goals.Goal, error) {
	if _, err := s.UserProfile(ctx, userID); err != nil {
		return nil, err
	}
	return s.gateway.ListGoals(ctx, userID)
}

// Leaderboard ranks all users on metric; an empty metric means total_workouts.
func (s *ContextService) Leaderboard(ctx context.Context, metric string) ([]insights.LeaderboardEntry, insights.Metric, error) {
	if metric == "" {
		metric = string(insights.MetricTotalWorkouts)
	}
	m, err := insights.ParseMetric(metric)
	if err != nil {
		return nil, "", err
	}
	entries, err := s.gateway.Leaderboard(ctx, m)
	if err != nil {
		return nil, "", err
	}
	return entries, m, nil
}

func (s *ContextService) Insights(ctx context.Context, userID int) (*InsightsSummary, error) {
	if _, err := s.UserProfile(ctx, userID); err != nil {
		return nil, err
	}
	stats, err := s.gateway.UserInsights(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return &InsightsSummary{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &InsightsSummary{UserInsights: *stats, HasWorkouts: true}, nil
}
