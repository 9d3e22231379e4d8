package insights

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=insights_mocks_test.go -package=insights_test

type insightsGateway interface {
	Leaderboard(ctx context.Context, metric Metric) ([]LeaderboardEntry, error)
	UserInsights(ctx context.Context, userID int) (*UserInsights, error)
}

type LeaderboardResponse struct {
	Metric  Metric             `json:"metric"`
	Entries []LeaderboardEntry `json:"entries"`
}

type InsightsResponse struct {
	UserInsights
	HasWorkouts bool `json:"hasWorkouts"`
}

type Handler struct {
	gateway insightsGateway
}

func NewHandler(gateway insightsGateway) *Handler {
	return &Handler{
		gateway: gateway,
	}
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.leaderboard")
	defer span.End()

	metric := Metric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = MetricTotalWorkouts
	}
	span.SetAttributes(attribute.String("metric", string(metric)))

	entries, err := handler.gateway.Leaderboard(ctx, metric)
	if err != nil {
		fitness.WriteError(w, "leaderboard", err)
		return
	}

	pkg.WriteJSON(w, LeaderboardResponse{
		Metric:  metric,
		Entries: entries,
	}, http.StatusOK)
}

// HandleMyInsights answers zeros with hasWorkouts=false for a user with no workouts.
func (handler *Handler) HandleMyInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.user")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	ui, err := handler.gateway.UserInsights(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			pkg.WriteJSON(w, InsightsResponse{}, http.StatusOK)
			return
		}
		fitness.WriteError(w, "user insights", err)
		return
	}

	pkg.WriteJSON(w, InsightsResponse{
		UserInsights: *ui,
		HasWorkouts:  true,
	}, http.StatusOK)
}
