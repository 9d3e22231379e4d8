package auth

import "context"

var _ Checker = (*Service)(nil)

// Checker resolves a session token to the logged-in user id, and ends sessions that went stale.
type Checker interface {
	UserID(ctx context.Context, token string) (int, error)
	Logout(ctx context.Context, token string) error
}
