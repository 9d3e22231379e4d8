package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create inserts the workout and its exercises in one transaction.
// Exercises are sent as a single batch, in the submitted order.
func (r *Repo) Create(ctx context.Context, newWorkout NewWorkout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", newWorkout.UserID),
		attribute.Int("exercises.count", len(newWorkout.Exercises)),
	)

	workout := &Workout{
		UserID:          newWorkout.UserID,
		Date:            newWorkout.Date,
		DurationMinutes: newWorkout.DurationMinutes,
		Exercises:       make([]Exercise, len(newWorkout.Exercises)),
	}

	err = pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workouts (user_id, workout_date, duration_minutes)
				VALUES ($1, $2, $3)
			RETURNING workout_id;`,
			newWorkout.UserID, newWorkout.Date, newWorkout.DurationMinutes,
		).Scan(&workout.ID); err != nil {
			return fmt.Errorf("insert workout: %w", err)
		}

		if len(newWorkout.Exercises) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, ex := range newWorkout.Exercises {
			batch.Queue(
				`INSERT INTO exercises (workout_id, exercise_name, sets, reps, weight_lifted)
					VALUES ($1, $2, $3, $4, $5)
				RETURNING exercise_id;`,
				workout.ID, ex.Name, ex.Sets, ex.Reps, ex.WeightLifted,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for i, ex := range newWorkout.Exercises {
			var exerciseID int
			if err := results.QueryRow().Scan(&exerciseID); err != nil {
				_ = results.Close()
				return fmt.Errorf("insert exercise %d: %w", i, err)
			}
			workout.Exercises[i] = Exercise{
				ID:           exerciseID,
				Name:         ex.Name,
				Sets:         ex.Sets,
				Reps:         ex.Reps,
				WeightLifted: ex.WeightLifted,
			}
		}
		return results.Close()
	})
	if err != nil {
		return nil, store.Classify(err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return workout, nil
}

// ListByUser returns the user's workouts, most recent date first, each with its
// exercises in insertion order. Exercises are fetched with one query for all workouts.
func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	workouts := []Workout{}
	err = pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		rows, err := tx.Query(
			ctx,
			`SELECT workout_id, user_id, workout_date, duration_minutes
				FROM workouts
				WHERE user_id = $1
			ORDER BY workout_date DESC, workout_id DESC;`,
			userID,
		)
		if err != nil {
			return fmt.Errorf("query workouts: %w", err)
		}

		byID := map[int]int{}
		var ids []int
		for rows.Next() {
			var w Workout
			if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.DurationMinutes); err != nil {
				rows.Close()
				return fmt.Errorf("rows scan: %w", err)
			}
			w.Exercises = []Exercise{}
			byID[w.ID] = len(workouts)
			ids = append(ids, w.ID)
			workouts = append(workouts, w)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("workouts rows: %w", err)
		}

		if len(ids) == 0 {
			return nil
		}

		exRows, err := tx.Query(
			ctx,
			`SELECT exercise_id, workout_id, exercise_name, sets, reps, COALESCE(weight_lifted, 0)::float8
				FROM exercises
				WHERE workout_id = ANY($1::int[])
			ORDER BY exercise_id;`,
			ids,
		)
		if err != nil {
			return fmt.Errorf("query exercises: %w", err)
		}
		defer exRows.Close()

		for exRows.Next() {
			var ex Exercise
			var workoutID int
			if err := exRows.Scan(&ex.ID, &workoutID, &ex.Name, &ex.Sets, &ex.Reps, &ex.WeightLifted); err != nil {
				return fmt.Errorf("rows scan: %w", err)
			}
			idx := byID[workoutID]
			workouts[idx].Exercises = append(workouts[idx].Exercises, ex)
		}
		return exRows.Err()
	})
	if err != nil {
		return nil, store.Classify(err)
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

// Delete removes the workout; its exercises cascade.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE workout_id = $1;`, id)
	if err != nil {
		return store.Classify(fmt.Errorf("delete workout %d: %w", id, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete workout %d: %w", id, store.ErrNotFound)
	}
	return nil
}
