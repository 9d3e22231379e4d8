package insights

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// every user is ranked, users without workouts with 0; ties go to the lower id
var leaderboardQueries = map[Metric]string{
	MetricTotalWorkouts: `
		SELECT u.user_id, u.name, COUNT(w.workout_id) AS value
			FROM users u
			LEFT JOIN workouts w ON w.user_id = u.user_id
		GROUP BY u.user_id, u.name
		ORDER BY value DESC, u.user_id ASC;`,
	MetricTotalMinutes: `
		SELECT u.user_id, u.name, COALESCE(SUM(w.duration_minutes), 0)::bigint AS value
			FROM users u
			LEFT JOIN workouts w ON w.user_id = u.user_id
		GROUP BY u.user_id, u.name
		ORDER BY value DESC, u.user_id ASC;`,
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Leaderboard(ctx context.Context, metric Metric) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.leaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", string(metric)))

	query, ok := leaderboardQueries[metric]
	if !ok {
		return nil, fmt.Errorf("leaderboard metric %q: %w", metric, store.ErrInvalidInput)
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, store.Classify(fmt.Errorf("query leaderboard: %w", err))
	}
	defer rows.Close()

	entries := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Value); err != nil {
			return nil, store.Classify(fmt.Errorf("rows scan: %w", err))
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(fmt.Errorf("leaderboard rows: %w", err))
	}

	return entries, nil
}

// UserInsights fails with store.ErrNotFound when the user has no workouts.
func (r *Repo) UserInsights(ctx context.Context, userID int) (_ *UserInsights, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.insights.user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	ui := &UserInsights{}
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*),
				COALESCE(SUM(duration_minutes), 0)::bigint,
				COALESCE(AVG(duration_minutes), 0)::float8,
				COALESCE(MIN(duration_minutes), 0)::bigint,
				COALESCE(MAX(duration_minutes), 0)::bigint
			FROM workouts
			WHERE user_id = $1;`,
		userID,
	).Scan(&ui.Count, &ui.Sum, &ui.Average, &ui.Min, &ui.Max); err != nil {
		return nil, store.Classify(fmt.Errorf("query insights: %w", err))
	}

	if ui.Count == 0 {
		return nil, fmt.Errorf("insights of user %d: %w", userID, store.ErrNotFound)
	}

	return ui, nil
}
