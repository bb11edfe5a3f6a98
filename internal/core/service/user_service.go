package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/internal/core/ports"
)

const minPasswordLen = 8

// UserService implements profile management for the administration screen.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, normalizeUsername(username))
}

// Save creates or updates a profile. A non-empty EditKey marks an update of
// the profile with that username; otherwise a new profile is created, which
// requires a password.
func (s *UserService) Save(ctx context.Context, input ports.SaveUserInput) (bool, error) {
	username := normalizeUsername(input.Username)
	if username == "" || strings.TrimSpace(input.Name) == "" {
		return false, domain.ErrMissingFields
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUsuario
	}

	if input.EditKey != "" {
		return false, s.update(ctx, normalizeUsername(input.EditKey), input, role)
	}

	if len(input.Password) < minPasswordLen {
		return false, domain.ErrPasswordTooShort
	}
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return false, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
		Role:         role,
		Active:       domain.ActiveFlag(input.Active),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create profile")
		return false, err
	}

	s.logger.Info().Str("username", username).Str("role", role).Msg("profile created")
	return true, nil
}

func (s *UserService) update(ctx context.Context, editKey string, input ports.SaveUserInput, role string) error {
	current, err := s.repo.FindByUsername(ctx, editKey)
	if err != nil {
		return err
	}

	current.Name = strings.TrimSpace(input.Name)
	current.Email = strings.TrimSpace(input.Email)
	current.Role = role
	current.Active = domain.ActiveFlag(input.Active)
	current.UpdatedAt = time.Now().UTC()

	// An empty password on edit keeps the stored hash.
	if input.Password != "" {
		if len(input.Password) < minPasswordLen {
			return domain.ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		current.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.logger.Error().Err(err).Str("username", editKey).Msg("failed to update profile")
		return err
	}

	s.logger.Info().Str("username", editKey).Msg("profile updated")
	return nil
}

// Delete removes a profile. Deleting the acting user's own profile is
// rejected so an administrator cannot lock themselves out.
func (s *UserService) Delete(ctx context.Context, username, actingUsername string) error {
	username = normalizeUsername(username)
	if username == normalizeUsername(actingUsername) {
		return domain.ErrSelfDelete
	}

	if _, err := s.repo.FindByUsername(ctx, username); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, username); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to delete profile")
		return err
	}

	s.logger.Info().Str("username", username).Msg("profile deleted")
	return nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
