package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Jesus1025/registro-interno/internal/core/domain"
	"github.com/Jesus1025/registro-interno/internal/core/ports"
	"github.com/Jesus1025/registro-interno/pkg/rut"
)

// ClientService implements the client registry use cases.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) List(ctx context.Context, status string) ([]*domain.Client, error) {
	return s.repo.List(ctx, strings.ToLower(strings.TrimSpace(status)))
}

func (s *ClientService) Get(ctx context.Context, rawRUT string) (*domain.Client, error) {
	key := rut.Normalize(rawRUT)
	if key == "" {
		return nil, domain.ErrClientNotFound
	}
	return s.repo.FindByRUT(ctx, key)
}

// Save creates the client, or updates it when the normalized RUT already
// exists. An update always reactivates the record, mirroring the registry
// screen where re-submitting a deactivated client brings it back.
func (s *ClientService) Save(ctx context.Context, input ports.SaveClientInput) (bool, error) {
	if strings.TrimSpace(input.RUT) == "" || strings.TrimSpace(input.BusinessName) == "" {
		return false, domain.ErrMissingFields
	}
	if !rut.Valid(input.RUT) {
		return false, domain.ErrInvalidRUT
	}

	client := &domain.Client{
		RUT:          rut.Normalize(input.RUT),
		BusinessName: strings.TrimSpace(input.BusinessName),
		Activity:     input.Activity,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		Commune:      input.Commune,
		BankAccount:  input.BankAccount,
		Bank:         input.Bank,
		Notes:        input.Notes,
		Active:       true,
	}

	_, err := s.repo.FindByRUT(ctx, client.RUT)
	switch {
	case err == nil:
		if err := s.repo.Update(ctx, client); err != nil {
			s.logger.Error().Err(err).Str("rut", client.RUT).Msg("failed to update client")
			return false, err
		}
		s.logger.Info().Str("rut", client.RUT).Msg("client updated")
		return false, nil
	case errors.Is(err, domain.ErrClientNotFound):
		if err := s.repo.Insert(ctx, client); err != nil {
			s.logger.Error().Err(err).Str("rut", client.RUT).Msg("failed to create client")
			return false, err
		}
		s.logger.Info().Str("rut", client.RUT).Msg("client created")
		return true, nil
	default:
		return false, err
	}
}

// UpdateFields applies a partial update to an existing client. Only the
// fields present in the patch change; the active flag is untouched.
func (s *ClientService) UpdateFields(ctx context.Context, rawRUT string, patch ports.ClientFieldPatch) error {
	current, err := s.Get(ctx, rawRUT)
	if err != nil {
		return err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&current.BusinessName, patch.BusinessName)
	apply(&current.Activity, patch.Activity)
	apply(&current.Phone, patch.Phone)
	apply(&current.Email, patch.Email)
	apply(&current.Address, patch.Address)
	apply(&current.Commune, patch.Commune)
	apply(&current.BankAccount, patch.BankAccount)
	apply(&current.Bank, patch.Bank)
	apply(&current.Notes, patch.Notes)

	if strings.TrimSpace(current.BusinessName) == "" {
		return domain.ErrMissingFields
	}

	if err := s.repo.Update(ctx, current); err != nil {
		s.logger.Error().Err(err).Str("rut", current.RUT).Msg("failed to patch client")
		return err
	}

	s.logger.Info().Str("rut", current.RUT).Msg("client fields updated")
	return nil
}

// Deactivate flags the client inactive. The record itself is kept because
// historical documents still reference the RUT.
func (s *ClientService) Deactivate(ctx context.Context, rawRUT string) error {
	key := rut.Normalize(rawRUT)
	if key == "" {
		return domain.ErrClientNotFound
	}

	if _, err := s.repo.FindByRUT(ctx, key); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, key); err != nil {
		s.logger.Error().Err(err).Str("rut", key).Msg("failed to deactivate client")
		return err
	}

	s.logger.Info().Str("rut", key).Msg("client deactivated")
	return nil
}
