package goals

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

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

func (r *Repo) Create(ctx context.Context, userID int, description string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	goal := &Goal{Description: description}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO goals (user_id, goal_description) VALUES ($1, $2) RETURNING goal_id, is_completed;`,
		userID, description,
	).Scan(&goal.ID, &goal.Completed); err != nil {
		return nil, store.Classify(fmt.Errorf("insert goal: %w", err))
	}

	span.SetAttributes(attribute.Int("goal.id", goal.ID))
	return goal, nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT goal_id, goal_description, is_completed FROM goals WHERE user_id = $1 ORDER BY goal_id;`,
		userID,
	)
	if err != nil {
		return nil, store.Classify(fmt.Errorf("query goals: %w", err))
	}
	defer rows.Close()

	goals := []Goal{}
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.Description, &g.Completed); err != nil {
			return nil, store.Classify(fmt.Errorf("rows scan: %w", err))
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(fmt.Errorf("goals rows: %w", err))
	}

	return goals, nil
}

func (r *Repo) SetStatus(ctx context.Context, goalID int, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goalID), attribute.Bool("completed", completed))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE goals SET is_completed = $1 WHERE goal_id = $2;`,
		completed, goalID,
	)
	if err != nil {
		return store.Classify(fmt.Errorf("set goal %d status: %w", goalID, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set goal %d status: %w", goalID, store.ErrNotFound)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, goalID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("goal.id", goalID))

	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return store.Classify(fmt.Errorf("delete goal %d: %w", goalID, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete goal %d: %w", goalID, store.ErrNotFound)
	}
	return nil
}
