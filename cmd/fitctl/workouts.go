package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/internal/fitness/workouts"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(a *app) *cobra.Command {
	workoutCmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"w"},
		Short:   "Log, list and delete workouts",
	}

	var (
		date      string
		duration  int
		exercises []string
	)
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Log a workout",
		Long: `Log a workout with any number of exercises.

Each --exercise is NAME:SETS:REPS:WEIGHT, weight in kg.

EXAMPLES:

  fitctl workout log --duration 45 --exercise "Squat:5:5:80" --exercise "Bench Press:3:8:60"
  fitctl workout log --date 2024-03-02 --duration 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := a.currentUser(ctx)
			if err != nil {
				return err
			}

			workoutDate, err := workouts.ParseDate(date, a.now())
			if err != nil {
				return fmt.Errorf("invalid date %q, use YYYY-MM-DD", date)
			}

			newExercises := make([]workouts.NewExercise, 0, len(exercises))
			for _, raw := range exercises {
				ex, err := parseExercise(raw)
				if err != nil {
					return err
				}
				newExercises = append(newExercises, ex)
			}

			workout, err := a.gateway.CreateWorkout(ctx, workouts.NewWorkout{
				UserID:          user.ID,
				Date:            workoutDate,
				DurationMinutes: duration,
				Exercises:       newExercises,
			})
			if err != nil {
				return failed("log workout", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Logged workout %d\n", workout.ID)
			return a.printHistory(cmd, user.ID)
		},
	}
	logCmd.Flags().StringVar(&date, "date", "", "workout date YYYY-MM-DD (default today)")
	logCmd.Flags().IntVarP(&duration, "duration", "d", 0, "duration in minutes")
	logCmd.Flags().StringArrayVarP(&exercises, "exercise", "e", nil, "exercise as NAME:SETS:REPS:WEIGHT (repeatable)")
	_ = logCmd.MarkFlagRequired("duration")

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your workouts, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.currentUser(cmd.Context())
			if err != nil {
				return err
			}
			return a.printHistory(cmd, user.ID)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <workout id>",
		Short: "Delete a workout and its exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workoutID, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			user, err := a.currentUser(ctx)
			if err != nil {
				return err
			}
			if err := a.gateway.DeleteWorkout(ctx, workoutID); err != nil {
				return failed("delete workout", err)
			}
			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "Deleted workout %d\n", workoutID)
			return a.printHistory(cmd, user.ID)
		},
	}

	workoutCmd.AddCommand(logCmd, listCmd, deleteCmd)
	return workoutCmd
}

func (a *app) printHistory(cmd *cobra.Command, userID int) error {
	history, err := a.gateway.ReadWorkouts(cmd.Context(), userID)
	if err != nil {
		return failed("read workouts", err)
	}
	printWorkouts(cmd.OutOrStdout(), history)
	return nil
}

// parseExercise parses NAME:SETS:REPS:WEIGHT; the name itself may contain colons.
func parseExercise(raw string) (workouts.NewExercise, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 4 {
		return workouts.NewExercise{}, fmt.Errorf("invalid exercise %q, use NAME:SETS:REPS:WEIGHT", raw)
	}
	n := len(parts)
	name := strings.TrimSpace(strings.Join(parts[:n-3], ":"))
	sets, setsErr := strconv.Atoi(parts[n-3])
	reps, repsErr := strconv.Atoi(parts[n-2])
	weight, weightErr := strconv.ParseFloat(parts[n-1], 64)
	if name == "" || setsErr != nil || repsErr != nil || weightErr != nil {
		return workouts.NewExercise{}, fmt.Errorf("invalid exercise %q, use NAME:SETS:REPS:WEIGHT", raw)
	}
	return workouts.NewExercise{
		Name:         name,
		Sets:         sets,
		Reps:         reps,
		WeightLifted: weight,
	}, nil
}
