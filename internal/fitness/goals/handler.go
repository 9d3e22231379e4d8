package goals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsGateway interface {
	CreateGoal(ctx context.Context, userID int, description string) (*Goal, error)
	ListGoals(ctx context.Context, userID int) ([]Goal, error)
	SetGoalStatus(ctx context.Context, goalID int, completed bool) error
	DeleteGoal(ctx context.Context, goalID int) error
}

type NewGoalRequest struct {
	Description string `json:"description"`
}

type StatusRequest struct {
	Completed bool `json:"completed"`
}

type Handler struct {
	gateway goalsGateway
}

func NewHandler(gateway goalsGateway) *Handler {
	return &Handler{
		gateway: gateway,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	handler.writeGoals(ctx, w, userID, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	var goalReq NewGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&goalReq); err != nil {
		log.Tracef("new goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if _, err := handler.gateway.CreateGoal(ctx, userID, goalReq.Description); err != nil {
		fitness.WriteError(w, "add goal", err)
		return
	}

	handler.writeGoals(ctx, w, userID, http.StatusCreated)
}

func (handler *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.status")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	goalID, err := fitness.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	var statusReq StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		log.Tracef("goal status, unmarshal json params: %s", err)
		http.Error(w, "set goal status failed", http.StatusBadRequest)
		return
	}

	if err := handler.gateway.SetGoalStatus(ctx, goalID, statusReq.Completed); err != nil {
		fitness.WriteError(w, "set goal status", err)
		return
	}

	handler.writeGoals(ctx, w, userID, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	goalID, err := fitness.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	if err := handler.gateway.DeleteGoal(ctx, goalID); err != nil {
		fitness.WriteError(w, "delete goal", err)
		return
	}

	handler.writeGoals(ctx, w, userID, http.StatusOK)
}

func (handler *Handler) writeGoals(ctx context.Context, w http.ResponseWriter, userID, status int) {
	goals, err := handler.gateway.ListGoals(ctx, userID)
	if err != nil {
		fitness.WriteError(w, "list goals", err)
		return
	}
	pkg.WriteJSON(w, goals, status)
}
