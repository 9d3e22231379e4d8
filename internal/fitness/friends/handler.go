package friends

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=friends_mocks_test.go -package=friends_test

type friendsGateway interface {
	AddFriend(ctx context.Context, userID, friendID int) error
	RemoveFriend(ctx context.Context, userID, friendID int) error
	ListFriends(ctx context.Context, userID int) ([]Friend, error)
}

type Handler struct {
	gateway friendsGateway
}

func NewHandler(gateway friendsGateway) *Handler {
	return &Handler{
		gateway: gateway,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.list")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	handler.writeFriends(ctx, w, userID)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.add")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	friendID, err := fitness.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, invalid friend id", http.StatusBadRequest)
		return
	}

	if err := handler.gateway.AddFriend(ctx, userID, friendID); err != nil {
		fitness.WriteError(w, "add friend", err)
		return
	}

	handler.writeFriends(ctx, w, userID)
}

func (handler *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.friends.remove")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	friendID, err := fitness.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, invalid friend id", http.StatusBadRequest)
		return
	}

	if err := handler.gateway.RemoveFriend(ctx, userID, friendID); err != nil {
		fitness.WriteError(w, "remove friend", err)
		return
	}

	handler.writeFriends(ctx, w, userID)
}

func (handler *Handler) writeFriends(ctx context.Context, w http.ResponseWriter, userID int) {
	friends, err := handler.gateway.ListFriends(ctx, userID)
	if err != nil {
		fitness.WriteError(w, "list friends", err)
		return
	}
	pkg.WriteJSON(w, friends, http.StatusOK)
}
