package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("database unavailable")
	ErrInvalidInput = errors.New("invalid input")
	// ErrCanceled marks work abandoned because the caller went away.
	ErrCanceled     = errors.New("request canceled")
)

// Status discriminates the outcome of a gateway operation.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusUnavailable
	StatusInvalidInput
	StatusCanceled
	StatusInternal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusUnavailable:
		return "database unavailable"
	case StatusInvalidInput:
		return "invalid input"
	case StatusCanceled:
		return "canceled"
	default:
		return "internal error"
	}
}

// Classify wraps a driver error with the matching sentinel.
// Errors that are already classified, and nil, are returned as is.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrCanceled) {
		return err
	}

	// checked before connectivity, pgconn reports a canceled context as a timeout
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "22"), strings.HasPrefix(pgErr.Code, "23"):
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		case strings.HasPrefix(pgErr.Code, "08"),
			strings.HasPrefix(pgErr.Code, "53"),
			strings.HasPrefix(pgErr.Code, "57P0"):
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return err
	}

	if isConnectivityErr(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return err
}

func isConnectivityErr(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}

// StatusOf returns the discriminator of a (classified) error.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNotFound):
		return StatusNotFound
	case errors.Is(err, ErrUnavailable):
		return StatusUnavailable
	case errors.Is(err, ErrInvalidInput):
		return StatusInvalidInput
	case errors.Is(err, ErrCanceled):
		return StatusCanceled
	default:
		return StatusInternal
	}
}
