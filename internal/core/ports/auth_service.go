package ports

import (
	"context"
	"time"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

// AuthService handles login sessions and the self-service password change.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the session identified by the token id claim.
	Logout(ctx context.Context, username, tokenID string) error
	// ChangePassword verifies the current password, stores the new hash and
	// revokes every session of the user except keepTokenID.
	ChangePassword(ctx context.Context, username, current, next, keepTokenID string) error
}

// SessionStore tracks which issued tokens are still valid, so a password
// change or logout takes effect before the JWT itself expires.
type SessionStore interface {
	Put(ctx context.Context, username, tokenID string, ttl time.Duration) error
	Valid(ctx context.Context, username, tokenID string) (bool, error)
	Revoke(ctx context.Context, username, tokenID string) error
	// RevokeOthers drops all sessions of username except keepTokenID.
	RevokeOthers(ctx context.Context, username, keepTokenID string) error
}
