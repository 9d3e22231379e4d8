package main

import (
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/fitness/insights"
	"github.com/2beens/fittrack/internal/store"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd(a *app) *cobra.Command {
	var metric string
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := insights.ParseMetric(metric)
			if err != nil {
				return fmt.Errorf("unknown metric %q, use total_workouts or total_minutes", metric)
			}
			entries, err := a.gateway.Leaderboard(cmd.Context(), m)
			if err != nil {
				return failed("leaderboard", err)
			}

			// highlight the logged-in user when there is one
			currentID, _ := a.sessions.Load()
			printLeaderboard(cmd.OutOrStdout(), m, entries, currentID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&metric, "metric", "m", string(insights.MetricTotalWorkouts), "total_workouts or total_minutes")
	return cmd
}

func newInsightsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Statistics of your workout durations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := a.gateway.UserInsights(cmd.Context(), user.ID)
			if errors.Is(err, store.ErrNotFound) {
				printInsights(cmd.OutOrStdout(), nil)
				return nil
			}
			if err != nil {
				return failed("insights", err)
			}
			printInsights(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}
