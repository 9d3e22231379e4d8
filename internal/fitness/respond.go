package fitness

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/store"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidID = errors.New("invalid id")

// StatusClientClosedRequest answers a request whose client went away mid-flight.
const StatusClientClosedRequest = 499

// HTTPStatus maps a gateway error onto a response code.
func HTTPStatus(err error) int {
	switch store.StatusOf(err) {
	case store.StatusOK:
		return http.StatusOK
	case store.StatusNotFound:
		return http.StatusNotFound
	case store.StatusInvalidInput:
		return http.StatusBadRequest
	case store.StatusUnavailable:
		return http.StatusServiceUnavailable
	case store.StatusCanceled:
		return StatusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError logs err and answers with a generic message for its status.
// The underlying store error is never echoed to the client.
func WriteError(w http.ResponseWriter, action string, err error) {
	code := HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		log.Errorf("%s: %s", action, err)
	} else {
		log.Debugf("%s: %s", action, err)
	}
	http.Error(w, action+": "+store.StatusOf(err).String(), code)
}

// PathID reads a positive integer path variable.
func PathID(r *http.Request, name string) (int, error) {
	idStr := mux.Vars(r)[name]
	if idStr == "" {
		return 0, ErrInvalidID
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// SessionUserID returns the logged-in user id set by the session middleware.
// It answers 401 when the request carries no session.
func SessionUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
