package ports

import (
	"context"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

// UserRepository defines persistence operations for profile records.
type UserRepository interface {
	// List returns all profiles ordered by username.
	List(ctx context.Context) ([]*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the mutable fields of the profile keyed by
	// user.Username. The username itself never changes.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, username string) error
}
