package insights

import (
	"fmt"

	"github.com/2beens/fittrack/internal/store"
)

// Metric is the basis a leaderboard ranks users on.
type Metric string

const (
	MetricTotalWorkouts Metric = "total_workouts"
	MetricTotalMinutes  Metric = "total_minutes"
)

var Metrics = []Metric{MetricTotalWorkouts, MetricTotalMinutes}

func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q: %w", s, store.ErrInvalidInput)
}

type LeaderboardEntry struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Value  int64  `json:"value"`
}

// UserInsights aggregates the duration of a user's workouts, in minutes.
type UserInsights struct {
	Count   int64   `json:"count"`
	Sum     int64   `json:"sum"`
	Average float64 `json:"average"`
	Min     int64   `json:"min"`
	Max     int64   `json:"max"`
}
