package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/fitness/friends"
	"github.com/2beens/fittrack/internal/fitness/goals"
	"github.com/2beens/fittrack/internal/fitness/insights"
	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/fitness/workouts"
	"github.com/2beens/fittrack/internal/gateway"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/store"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errStaleSession = errors.New("the logged-in user no longer exists, log in again")

// gatewayError is a failed gateway call. It prints as the action and the store
// status only, driver details never reach the terminal.
type gatewayError struct {
	action string
	err    error
}

func failed(action string, err error) error {
	return &gatewayError{action: action, err: err}
}

func (e *gatewayError) Error() string {
	return e.action + ": " + store.StatusOf(e.err).String()
}

func (e *gatewayError) Unwrap() error {
	return e.err
}

// fitnessGateway is the persistence gateway as seen by the terminal client.
type fitnessGateway interface {
	CreateUser(ctx context.Context, newUser users.NewUser) (*users.User, error)
	ReadUser(ctx context.Context, id int) (*users.User, error)
	UpdateUser(ctx context.Context, user users.User) error
	DeleteUser(ctx context.Context, id int) error

	CreateWorkout(ctx context.Context, newWorkout workouts.NewWorkout) (*workouts.Workout, error)
	ReadWorkouts(ctx context.Context, userID int) ([]workouts.Workout, error)
	DeleteWorkout(ctx context.Context, id int) error

	AddFriend(ctx context.Context, userID, friendID int) error
	RemoveFriend(ctx context.Context, userID, friendID int) error
	ListFriends(ctx context.Context, userID int) ([]friends.Friend, error)

	CreateGoal(ctx context.Context, userID int, description string) (*goals.Goal, error)
	ListGoals(ctx context.Context, userID int) ([]goals.Goal, error)
	SetGoalStatus(ctx context.Context, goalID int, completed bool) error
	DeleteGoal(ctx context.Context, goalID int) error

	Leaderboard(ctx context.Context, metric insights.Metric) ([]insights.LeaderboardEntry, error)
	UserInsights(ctx context.Context, userID int) (*insights.UserInsights, error)
}

var _ fitnessGateway = (*gateway.Gateway)(nil)

// app carries what every command needs. Zero fields are filled lazily from the config.
type app struct {
	gateway    fitnessGateway
	sessions   *sessionStore
	now        func() time.Time
	env        string
	configPath string
	closeDB    func()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fitctl",
		Short:         "Personal fitness tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `fitctl logs workouts, friends and goals, and shows how you rank.

QUICK START:

  $ fitctl register --name Ana --email ana@example.com --weight 61.5
  $ fitctl workout log --duration 45 --exercise "Squat:5:5:80"
  $ fitctl goal add "Run 5k under 25 minutes"
  $ fitctl leaderboard --metric total_minutes`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closeDB != nil {
				a.closeDB()
				a.closeDB = nil
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.env, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "./config.toml", "path for the TOML config file")

	rootCmd.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newProfileCmd(a),
		newWorkoutCmd(a),
		newFriendCmd(a),
		newGoalCmd(a),
		newLeaderboardCmd(a),
		newInsightsCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.now == nil {
		a.now = time.Now
	}
	if a.sessions == nil {
		sessions, err := defaultSessionStore()
		if err != nil {
			return err
		}
		a.sessions = sessions
	}
	if a.gateway != nil || cmd.Name() == "logout" {
		return nil
	}

	_ = godotenv.Load()
	cfg, err := config.Load(a.env, a.configPath)
	if err != nil {
		return err
	}

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    "error",
		Environment: cfg.Environment,
	})

	dbPool, err := db.NewDBPool(cmd.Context(), db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: cfg.Secrets.PostgresPassword,
		MaxConns:   2,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	a.closeDB = dbPool.Close
	a.gateway = gateway.New(dbPool, nil)
	return nil
}

// currentUser reads the logged-in user. A session whose user is gone is cleared.
func (a *app) currentUser(ctx context.Context) (*users.User, error) {
	userID, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}

	user, err := a.gateway.ReadUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		if clearErr := a.sessions.Clear(); clearErr != nil {
			log.Errorf("clear stale session: %s", clearErr)
		}
		return nil, errStaleSession
	}
	if err != nil {
		return nil, failed("read user", err)
	}
	return user, nil
}
