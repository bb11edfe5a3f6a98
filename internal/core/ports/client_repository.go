package ports

import (
	"context"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

// ClientRepository defines persistence operations for client records.
// All RUT arguments are expected in canonical normalized form.
type ClientRepository interface {
	// List returns clients ordered by business name. status filters on the
	// active flag: "activo", "inactivo", or "" for all.
	List(ctx context.Context, status string) ([]*domain.Client, error)
	FindByRUT(ctx context.Context, rut string) (*domain.Client, error)
	Insert(ctx context.Context, client *domain.Client) error
	// Update replaces the record keyed by client.RUT.
	Update(ctx context.Context, client *domain.Client) error
	// Deactivate clears the active flag without removing the record.
	Deactivate(ctx context.Context, rut string) error
}
