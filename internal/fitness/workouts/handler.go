package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsGateway interface {
	CreateWorkout(ctx context.Context, newWorkout NewWorkout) (*Workout, error)
	ReadWorkouts(ctx context.Context, userID int) ([]Workout, error)
	DeleteWorkout(ctx context.Context, id int) error
}

type LogWorkoutRequest struct {
	// Date in YYYY-MM-DD, today when empty.
	Date            string        `json:"date"`
	DurationMinutes int           `json:"durationMinutes"`
	Exercises       []NewExercise `json:"exercises"`
}

type Handler struct {
	gateway        workoutsGateway
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(gateway workoutsGateway, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		gateway:        gateway,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// ParseDate parses a workout date, defaulting to today's date when empty.
func ParseDate(dateStr string, now time.Time) (time.Time, error) {
	if dateStr == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(DateLayout, dateStr)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	handler.writeHistory(ctx, w, userID, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	var logReq LogWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&logReq); err != nil {
		log.Tracef("log workout, unmarshal json params: %s", err)
		http.Error(w, "log workout failed", http.StatusBadRequest)
		return
	}

	date, err := ParseDate(logReq.Date, handler.now())
	if err != nil {
		http.Error(w, "log workout failed, date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	workout, err := handler.gateway.CreateWorkout(ctx, NewWorkout{
		UserID:          userID,
		Date:            date,
		DurationMinutes: logReq.DurationMinutes,
		Exercises:       logReq.Exercises,
	})
	if err != nil {
		fitness.WriteError(w, "log workout", err)
		return
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	handler.metricsManager.CounterWorkoutsLogged.Inc()
	log.Debugf("user %d logged workout %d with %d exercises", userID, workout.ID, len(workout.Exercises))

	handler.writeHistory(ctx, w, userID, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	id, err := fitness.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, invalid workout id", http.StatusBadRequest)
		return
	}

	if err := handler.gateway.DeleteWorkout(ctx, id); err != nil {
		fitness.WriteError(w, "delete workout", err)
		return
	}

	handler.writeHistory(ctx, w, userID, http.StatusOK)
}

func (handler *Handler) writeHistory(ctx context.Context, w http.ResponseWriter, userID, status int) {
	history, err := handler.gateway.ReadWorkouts(ctx, userID)
	if err != nil {
		fitness.WriteError(w, "read workouts", err)
		return
	}
	pkg.WriteJSON(w, history, status)
}
