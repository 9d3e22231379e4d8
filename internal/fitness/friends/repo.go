package friends

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

// Add stores a directed edge user -> friend. Duplicate and self edges are allowed.
func (r *Repo) Add(ctx context.Context, userID, friendID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("friend.id", friendID))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO friends (user_id, friend_id) VALUES ($1, $2);`,
		userID, friendID,
	); err != nil {
		return store.Classify(fmt.Errorf("add friend %d -> %d: %w", userID, friendID, err))
	}
	return nil
}

// Remove deletes every edge with the exact user -> friend pair.
func (r *Repo) Remove(ctx context.Context, userID, friendID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("friend.id", friendID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM friends WHERE user_id = $1 AND friend_id = $2;`,
		userID, friendID,
	)
	if err != nil {
		return store.Classify(fmt.Errorf("remove friend %d -> %d: %w", userID, friendID, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("remove friend %d -> %d: %w", userID, friendID, store.ErrNotFound)
	}
	return nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Friend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.friends.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT u.user_id, u.name, u.email
			FROM friends f
			JOIN users u ON u.user_id = f.friend_id
			WHERE f.user_id = $1
		ORDER BY f.friendship_id;`,
		userID,
	)
	if err != nil {
		return nil, store.Classify(fmt.Errorf("query friends: %w", err))
	}
	defer rows.Close()

	friends := []Friend{}
	for rows.Next() {
		var f Friend
		if err := rows.Scan(&f.ID, &f.Name, &f.Email); err != nil {
			return nil, store.Classify(fmt.Errorf("rows scan: %w", err))
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(fmt.Errorf("friends rows: %w", err))
	}

	return friends, nil
}
