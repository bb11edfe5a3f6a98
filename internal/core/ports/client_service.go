package ports

import (
	"context"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

// SaveClientInput carries the client form payload. The RUT may arrive in any
// formatting; the service normalizes and validates it.
type SaveClientInput struct {
	RUT          string
	BusinessName string
	Activity     string
	Phone        string
	Email        string
	Address      string
	Commune      string
	BankAccount  string
	Bank         string
	Notes        string
}

// ClientFieldPatch carries the partial update used by the edit variant
// (PUT /api/clientes/:rut). Nil pointers mean "leave unchanged".
type ClientFieldPatch struct {
	BusinessName *string
	Activity     *string
	Phone        *string
	Email        *string
	Address      *string
	Commune      *string
	BankAccount  *string
	Bank         *string
	Notes        *string
}

// ClientService defines use-case operations for the client registry.
type ClientService interface {
	List(ctx context.Context, status string) ([]*domain.Client, error)
	Get(ctx context.Context, rut string) (*domain.Client, error)
	// Save creates the client, or updates and reactivates it when the
	// normalized RUT already exists. Reports whether a record was created.
	Save(ctx context.Context, input SaveClientInput) (created bool, err error)
	UpdateFields(ctx context.Context, rut string, patch ClientFieldPatch) error
	// Deactivate is the delete operation of the registry screen: records
	// are never removed, only flagged inactive.
	Deactivate(ctx context.Context, rut string) error
}
