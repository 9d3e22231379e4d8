package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/fitness"
	"github.com/2beens/fittrack/internal/fitness/users"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type sessionUsers interface {
	ReadUser(ctx context.Context, id int) (*users.User, error)
}

// Session resolves the X-FT-Token header to the logged-in user and puts both into
// the request context. Requests without a valid session get 401. A session whose
// user no longer exists is ended and answered with 401 as well.
func Session(checker auth.Checker, sessionUsers sessionUsers) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.session")
			defer span.End()

			token := r.Header.Get(auth.TokenHeader)
			if token == "" {
				log.Tracef("[missing token] [session middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "not logged in", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-session-token")
				return
			}

			userID, err := checker.UserID(ctx, token)
			if err != nil {
				if errors.Is(err, auth.ErrSessionNotFound) {
					log.Tracef("[invalid token] [session middleware] unauthorized => %s", r.URL.Path)
					http.Error(w, "not logged in", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "not-logged")
					return
				}
				log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
				http.Error(w, "session check failed", http.StatusServiceUnavailable)
				span.SetStatus(codes.Error, "check-session-err")
				span.RecordError(err)
				return
			}
			span.SetAttributes(attribute.Int("user.id", userID))

			if _, err := sessionUsers.ReadUser(ctx, userID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					log.Warnf("[stale session] user %d no longer exists => %s", userID, r.URL.Path)
					if err := checker.Logout(ctx, token); err != nil {
						log.Errorf("end stale session of user %d: %s", userID, err)
					}
					http.Error(w, "session expired, log in again", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "stale-session")
					return
				}
				fitness.WriteError(w, "session check", err)
				span.SetStatus(codes.Error, "read-session-user-err")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithSession(ctx, userID, token)))
		})
	}
}
