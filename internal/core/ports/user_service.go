package ports

import (
	"context"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

// SaveUserInput carries the profile form payload. EditKey is empty for a
// create and holds the username of the profile being edited for an update;
// the backend disambiguates on its presence.
type SaveUserInput struct {
	EditKey  string
	Username string
	Name     string
	Email    string
	Role     string
	Active   bool
	// Password is optional on update (empty keeps the current hash) and
	// mandatory on create.
	Password string
}

// UserService defines use-case operations for profile management.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Save(ctx context.Context, input SaveUserInput) (created bool, err error)
	// Delete removes the profile. actingUsername guards against deleting
	// the account that issued the request.
	Delete(ctx context.Context, username, actingUsername string) error
}
