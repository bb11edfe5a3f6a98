package handler

import (
	"time"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
)

// saveUserRequest is the profile form payload. ID carries the username of
// the profile being edited and is absent on create; the backend uses its
// presence to disambiguate create from update.
type saveUserRequest struct {
	ID       string             `json:"id,omitempty"`
	Username string             `json:"username" validate:"required"`
	Name     string             `json:"nombre"   validate:"required"`
	Email    string             `json:"email"    validate:"omitempty,email"`
	Role     string             `json:"rol"      validate:"omitempty,oneof=admin usuario consulta"`
	Active   *domain.ActiveFlag `json:"activo"`
	Password string             `json:"password" validate:"omitempty,min=8"`
}

// active returns the flag value, defaulting to active when the field was
// omitted (legacy payloads never sent activo on create).
func (r saveUserRequest) active() bool {
	if r.Active == nil {
		return true
	}
	return r.Active.Bool()
}

type userResponse struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Name      string            `json:"nombre"`
	Email     string            `json:"email,omitempty"`
	Role      string            `json:"rol"`
	Active    domain.ActiveFlag `json:"activo"`
	CreatedAt string            `json:"fecha_creacion,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Active:   u.Active,
	}
	if !u.CreatedAt.IsZero() {
		// Date-and-time string; list screens display only the date part.
		resp.CreatedAt = u.CreatedAt.UTC().Format(time.DateTime)
	}
	return resp
}
