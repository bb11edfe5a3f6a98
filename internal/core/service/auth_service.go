package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/internal/core/ports"
)

// AuthService implements login sessions and the password change flow.
type AuthService struct {
	repo      ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials, records the session and returns the signed
// token. Inactive profiles cannot log in.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if !user.Active.Bool() {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tokenID := newTokenID()
	token, err := s.generateToken(user, tokenID)
	if err != nil {
		return "", nil, err
	}
	if err := s.sessions.Put(ctx, username, tokenID, s.tokenTTL); err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Str("role", user.Role).Msg("login")
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, username, tokenID string) error {
	return s.sessions.Revoke(ctx, normalizeUsername(username), tokenID)
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every other session of the user, so a stolen token stops working
// as soon as the password rotates.
func (s *AuthService) ChangePassword(ctx context.Context, username, current, next, keepTokenID string) error {
	if current == "" || next == "" {
		return domain.ErrMissingFields
	}
	if len(next) < minPasswordLen {
		return domain.ErrPasswordTooShort
	}

	username = normalizeUsername(username)
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to change password")
		return err
	}
	if err := s.sessions.RevokeOthers(ctx, username, keepTokenID); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to revoke other sessions")
	}

	s.logger.Info().Str("username", username).Msg("password changed")
	return nil
}

func (s *AuthService) generateToken(user *domain.User, tokenID string) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"jti":      tokenID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}
