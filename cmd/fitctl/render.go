package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/2beens/fittrack/internal/fitness/friends"
	"github.com/2beens/fittrack/internal/fitness/goals"
	"github.com/2beens/fittrack/internal/fitness/insights"
	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/fitness/workouts"

	"github.com/fatih/color"
)

var (
	faint = color.New(color.Faint)
	bold  = color.New(color.Bold)
)

func printProfile(w io.Writer, user *users.User) {
	bold.Fprintln(w, user.Name)
	fmt.Fprintf(w, "  id      %d\n", user.ID)
	fmt.Fprintf(w, "  email   %s\n", user.Email)
	if user.Weight > 0 {
		fmt.Fprintf(w, "  weight  %.2f kg\n", user.Weight)
	} else {
		fmt.Fprintf(w, "  weight  %s\n", faint.Sprint("-"))
	}
}

func printWorkouts(w io.Writer, history []workouts.Workout) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No workouts logged yet.")
		return
	}
	for _, workout := range history {
		fmt.Fprintf(w, "%s %s %d min\n",
			faint.Sprintf("#%d", workout.ID),
			bold.Sprint(workout.Date.Format(workouts.DateLayout)),
			workout.DurationMinutes,
		)
		for _, ex := range workout.Exercises {
			fmt.Fprintf(w, "    %s %dx%d @ %.2f kg\n", padRight(ex.Name, 20), ex.Sets, ex.Reps, ex.WeightLifted)
		}
	}
}

func printFriends(w io.Writer, list []friends.Friend) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No friends yet.")
		return
	}
	for _, f := range list {
		fmt.Fprintf(w, "%s %s %s\n", faint.Sprintf("#%d", f.ID), padRight(f.Name, 20), f.Email)
	}
}

func printGoals(w io.Writer, list []goals.Goal) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No goals yet.")
		return
	}
	for _, g := range list {
		mark := "[ ]"
		if g.Completed {
			mark = color.GreenString("[x]")
		}
		fmt.Fprintf(w, "%s %s %s\n", faint.Sprintf("#%d", g.ID), mark, g.Description)
	}
}

func printLeaderboard(w io.Writer, metric insights.Metric, entries []insights.LeaderboardEntry, currentUserID int) {
	bold.Fprintf(w, "Leaderboard by %s\n", metric)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No users yet.")
		return
	}
	for i, e := range entries {
		line := fmt.Sprintf("%3d. %s %d", i+1, padRight(e.Name, 20), e.Value)
		if e.UserID == currentUserID {
			line = color.CyanString(line + "  <- you")
		}
		fmt.Fprintln(w, line)
	}
}

// printInsights prints zeros and a hint when stats is nil.
func printInsights(w io.Writer, stats *insights.UserInsights) {
	if stats == nil {
		stats = &insights.UserInsights{}
		color.New(color.FgYellow).Fprintln(w, "Log a workout to see your insights.")
	}
	bold.Fprintln(w, "Workout duration (minutes)")
	fmt.Fprintf(w, "  workouts  %d\n", stats.Count)
	fmt.Fprintf(w, "  total     %d\n", stats.Sum)
	fmt.Fprintf(w, "  average   %.1f\n", stats.Average)
	fmt.Fprintf(w, "  min       %d\n", stats.Min)
	fmt.Fprintf(w, "  max       %d\n", stats.Max)
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
