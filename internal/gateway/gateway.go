package gateway

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/fitness/friends"
	"github.com/2beens/fittrack/internal/fitness/goals"
	"github.com/2beens/fittrack/internal/fitness/insights"
	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/fitness/workouts"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Gateway is the persistence layer used by every front end: HTTP API, CLI and MCP.
// Each call borrows a pooled connection for its duration. Errors are classified,
// check them with errors.Is against the store sentinels or with store.StatusOf.
type Gateway struct {
	pool           *pgxpool.Pool
	users          *users.Repo
	workouts       *workouts.Repo
	friends        *friends.Repo
	goals          *goals.Repo
	insights       *insights.Repo
	metricsManager *metrics.Manager
}

// New builds the gateway over the pool. metricsManager may be nil.
func New(pool *pgxpool.Pool, metricsManager *metrics.Manager) *Gateway {
	return &Gateway{
		pool:           pool,
		users:          users.NewRepo(pool),
		workouts:       workouts.NewRepo(pool),
		friends:        friends.NewRepo(pool),
		goals:          goals.NewRepo(pool),
		insights:       insights.NewRepo(pool),
		metricsManager: metricsManager,
	}
}

func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.pool.Ping(ctx); err != nil {
		return store.Classify(fmt.Errorf("ping: %w", err))
	}
	return nil
}

func (g *Gateway) observe(op string, err error) {
	if err == nil {
		return
	}
	status := store.StatusOf(err)
	if g.metricsManager != nil {
		g.metricsManager.CounterGatewayErrors.WithLabelValues(status.String()).Inc()
	}
	switch status {
	case store.StatusUnavailable, store.StatusInternal:
		log.Errorf("gateway %s: %s", op, err)
	case store.StatusCanceled:
		log.Debugf("gateway %s: %s", op, err)
	}
}

func (g *Gateway) CreateUser(ctx context.Context, newUser users.NewUser) (_ *users.User, err error) {
	defer func() { g.observe("create user", err) }()
	return g.users.Create(ctx, newUser)
}

func (g *Gateway) ReadUser(ctx context.Context, id int) (_ *users.User, err error) {
	defer func() { g.observe("read user", err) }()
	return g.users.Get(ctx, id)
}

func (g *Gateway) UpdateUser(ctx context.Context, user users.User) (err error) {
	defer func() { g.observe("update user", err) }()
	return g.users.Update(ctx, user)
}

func (g *Gateway) DeleteUser(ctx context.Context, id int) (err error) {
	defer func() { g.observe("delete user", err) }()
	return g.users.Delete(ctx, id)
}

func (g *Gateway) CreateWorkout(ctx context.Context, newWorkout workouts.NewWorkout) (_ *workouts.Workout, err error) {
	defer func() { g.observe("create workout", err) }()
	return g.workouts.Create(ctx, newWorkout)
}

func (g *Gateway) ReadWorkouts(ctx context.Context, userID int) (_ []workouts.Workout, err error) {
	defer func() { g.observe("read workouts", err) }()
	return g.workouts.ListByUser(ctx, userID)
}

func (g *Gateway) DeleteWorkout(ctx context.Context, id int) (err error) {
	defer func() { g.observe("delete workout", err) }()
	return g.workouts.Delete(ctx, id)
}

func (g *Gateway) AddFriend(ctx context.Context, userID, friendID int) (err error) {
	defer func() { g.observe("add friend", err) }()
	return g.friends.Add(ctx, userID, friendID)
}

func (g *Gateway) RemoveFriend(ctx context.Context, userID, friendID int) (err error) {
	defer func() { g.observe("remove friend", err) }()
	return g.friends.Remove(ctx, userID, friendID)
}

func (g *Gateway) ListFriends(ctx context.Context, userID int) (_ []friends.Friend, err error) {
	defer func() { g.observe("list friends", err) }()
	return g.friends.List(ctx, userID)
}

func (g *Gateway) CreateGoal(ctx context.Context, userID int, description string) (_ *goals.Goal, err error) {
	defer func() { g.observe("create goal", err) }()
	return g.goals.Create(ctx, userID, description)
}

func (g *Gateway) ListGoals(ctx context.Context, userID int) (_ []goals.Goal, err error) {
	defer func() { g.observe("list goals", err) }()
	return g.goals.List(ctx, userID)
}

func (g *Gateway) SetGoalStatus(ctx context.Context, goalID int, completed bool) (err error) {
	defer func() { g.observe("set goal status", err) }()
	return g.goals.SetStatus(ctx, goalID, completed)
}

func (g *Gateway) DeleteGoal(ctx context.Context, goalID int) (err error) {
	defer func() { g.observe("delete goal", err) }()
	return g.goals.Delete(ctx, goalID)
}

func (g *Gateway) Leaderboard(ctx context.Context, metric insights.Metric) (_ []insights.LeaderboardEntry, err error) {
	defer func() { g.observe("leaderboard", err) }()
	return g.insights.Leaderboard(ctx, metric)
}

func (g *Gateway) UserInsights(ctx context.Context, userID int) (_ *insights.UserInsights, err error) {
	defer func() { g.observe("user insights", err) }()
	return g.insights.UserInsights(ctx, userID)
}
