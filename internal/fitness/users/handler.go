package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersGateway interface {
	CreateUser(ctx context.Context, newUser NewUser) (*User, error)
	ReadUser(ctx context.Context, id int) (*User, error)
	UpdateUser(ctx context.Context, user User) error
	DeleteUser(ctx context.Context, id int) error
}

type sessionManager interface {
	Login(ctx context.Context, userID int) (string, error)
	Logout(ctx context.Context, token string) error
}

type LoginRequest struct {
	UserID int `json:"userId"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	gateway        usersGateway
	sessions       sessionManager
	metricsManager *metrics.Manager
}

func NewHandler(
	gateway usersGateway,
	sessions sessionManager,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		gateway:        gateway,
		sessions:       sessions,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var newUser NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		log.Tracef("register user, unmarshal json params: %s", err)
		http.Error(w, "register user failed", http.StatusBadRequest)
		return
	}

	user, err := handler.gateway.CreateUser(ctx, newUser)
	if err != nil {
		fitness.WriteError(w, "register user", err)
		return
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	handler.metricsManager.CounterUsersRegistered.Inc()
	log.Debugf("new user registered: %d", user.ID)
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	id, err := fitness.PathID(r, "id")
	if err != nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}

	user, err := handler.gateway.ReadUser(ctx, id)
	if err != nil {
		fitness.WriteError(w, "read user", err)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var loginReq LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil || loginReq.UserID <= 0 {
		handler.metricsManager.CounterLogins.WithLabelValues("bad_request").Inc()
		http.Error(w, "login failed, user id missing", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("user.id", loginReq.UserID))

	user, err := handler.gateway.ReadUser(ctx, loginReq.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			handler.metricsManager.CounterLogins.WithLabelValues("invalid_user").Inc()
			http.Error(w, "login failed, invalid user id", http.StatusNotFound)
			return
		}
		handler.metricsManager.CounterLogins.WithLabelValues("error").Inc()
		fitness.WriteError(w, "login", err)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID)
	if err != nil {
		handler.metricsManager.CounterLogins.WithLabelValues("error").Inc()
		log.Errorf("login user %d, create session: %s", user.ID, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogins.WithLabelValues("ok").Inc()
	log.Debugf("user %d logged in", user.ID)
	pkg.WriteJSON(w, LoginResponse{
		Token: token,
		User:  *user,
	}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	token := auth.TokenFromContext(ctx)
	if err := handler.sessions.Logout(ctx, token); err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	user, err := handler.gateway.ReadUser(ctx, userID)
	if err != nil {
		handler.readUserFailed(ctx, w, userID, err)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	var profile NewUser
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("update user, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	if err := handler.gateway.UpdateUser(ctx, User{
		ID:     userID,
		Name:   profile.Name,
		Email:  profile.Email,
		Weight: profile.Weight,
	}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			handler.dropStaleSession(ctx, w, userID)
			return
		}
		fitness.WriteError(w, "update profile", err)
		return
	}

	user, err := handler.gateway.ReadUser(ctx, userID)
	if err != nil {
		handler.readUserFailed(ctx, w, userID, err)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}

func (handler *Handler) HandleDeleteMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.delete")
	defer span.End()

	userID, ok := fitness.SessionUserID(w, r)
	if !ok {
		return
	}

	if err := handler.gateway.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			handler.dropStaleSession(ctx, w, userID)
			return
		}
		fitness.WriteError(w, "delete profile", err)
		return
	}

	if err := handler.sessions.Logout(ctx, auth.TokenFromContext(ctx)); err != nil {
		log.Errorf("delete user %d, end session: %s", userID, err)
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: userID}, http.StatusOK)
}

func (handler *Handler) readUserFailed(ctx context.Context, w http.ResponseWriter, userID int, err error) {
	if errors.Is(err, store.ErrNotFound) {
		handler.dropStaleSession(ctx, w, userID)
		return
	}
	fitness.WriteError(w, "read profile", err)
}

// dropStaleSession ends a session whose user no longer exists.
func (handler *Handler) dropStaleSession(ctx context.Context, w http.ResponseWriter, userID int) {
	log.Warnf("session user %d no longer exists, ending session", userID)
	if err := handler.sessions.Logout(ctx, auth.TokenFromContext(ctx)); err != nil {
		log.Errorf("end stale session of user %d: %s", userID, err)
	}
	http.Error(w, "session expired, log in again", http.StatusUnauthorized)
}
