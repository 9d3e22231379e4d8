package users

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

func (r *Repo) Create(ctx context.Context, newUser NewUser) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO users (name, email, weight) VALUES ($1, $2, $3) RETURNING user_id;`,
		newUser.Name, newUser.Email, newUser.Weight,
	).Scan(&id); err != nil {
		return nil, store.Classify(fmt.Errorf("insert user: %w", err))
	}

	span.SetAttributes(attribute.Int("user.id", id))

	return &User{
		ID:     id,
		Name:   newUser.Name,
		Email:  newUser.Email,
		Weight: newUser.Weight,
	}, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	user := &User{}
	if err := r.db.QueryRow(
		ctx,
		`SELECT user_id, name, email, COALESCE(weight, 0)::float8 FROM users WHERE user_id = $1;`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Weight); err != nil {
		return nil, store.Classify(fmt.Errorf("get user %d: %w", id, err))
	}

	return user, nil
}

func (r *Repo) Update(ctx context.Context, user User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", user.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET name = $1, email = $2, weight = $3 WHERE user_id = $4;`,
		user.Name, user.Email, user.Weight, user.ID,
	)
	if err != nil {
		return store.Classify(fmt.Errorf("update user %d: %w", user.ID, err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update user %d: %w", user.ID, store.ErrNotFound)
	}

	return nil
}

// Delete removes the user; workouts, friendships and goals cascade.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, id)
	if err != nil {
		return store.Classify(fmt.Errorf("delete user %d: %w", id, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete user %d: %w", id, store.ErrNotFound)
	}
	return nil
}
