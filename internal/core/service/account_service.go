package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medicore/clinic-system/internal/core/domain"
	"github.com/medicore/clinic-system/internal/core/ports"
)

// AccountService serves the authenticated read endpoints. Profile reads go
// through a best-effort cache; the repository stays the source of truth.
type AccountService struct {
	repo   ports.UserRepository
	cache  ports.ProfileCache
	logger zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, cache ports.ProfileCache, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, cache: cache, logger: logger}
}

func (s *AccountService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	if s.cache != nil {
		if user, ok := s.cache.Get(ctx, userID); ok {
			return user, nil
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, user)
	}
	return user, nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *AccountService) Overview(ctx context.Context) (*ports.StaffOverview, error) {
	doctors, err := s.repo.CountByRole(ctx, domain.RoleDoctor)
	if err != nil {
		return nil, err
	}
	patients, err := s.repo.CountByRole(ctx, domain.RolePatient)
	if err != nil {
		return nil, err
	}
	return &ports.StaffOverview{Doctors: doctors, Patients: patients}, nil
}
