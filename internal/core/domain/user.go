package domain

import (
	"errors"
	"time"
)

// Roles recognised by the permission policy. The role enum is open on the
// wire; anything outside this set is treated as read-only.
const (
	RoleAdmin    = "admin"
	RoleUsuario  = "usuario"
	RoleConsulta = "consulta"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordTooShort = errors.New("password must be at least 8 characters")
var ErrSelfDelete = errors.New("cannot delete your own account")
var ErrForbidden = errors.New("access forbidden")

// User is a profile record of the administration screen. Username is the
// identity key and is immutable once created.
type User struct {
	ID           string     `json:"id,omitempty"`
	Username     string     `json:"username"`
	Name         string     `json:"nombre"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"rol"`
	Active       ActiveFlag `json:"activo"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    time.Time  `json:"-"`
}
