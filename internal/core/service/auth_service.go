package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicore/clinic-system/internal/core/domain"
	"github.com/medicore/clinic-system/internal/core/ports"
)

const defaultMinPasswordLen = 6

// AuthService implements patient self-registration and login for all roles.
type AuthService struct {
	repo           ports.UserRepository
	hasher         ports.PasswordHasher
	tokens         ports.TokenService
	tokenTTL       time.Duration
	minPasswordLen int
	logger         zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, tokenTTL time.Duration, minPasswordLen int, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	if minPasswordLen <= 0 {
		minPasswordLen = defaultMinPasswordLen
	}
	return &AuthService{
		repo:           repo,
		hasher:         hasher,
		tokens:         tokens,
		tokenTTL:       tokenTTL,
		minPasswordLen: minPasswordLen,
		logger:         logger,
	}
}

// Register creates a patient account. Self-registration never grants an
// elevated role. The store's unique indexes make the duplicate check and
// the insert a single atomic step, so a lost race surfaces as
// domain.ErrUserExists rather than a second record.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", domain.ErrValidation)
	}
	if len(in.Password) < s.minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, s.minPasswordLen)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RolePatient,
		Contact:      strings.TrimSpace(in.Contact),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("patient registered")
	return created, nil
}

// Login authenticates by username or email. An unknown identifier and a
// wrong password return the same error, so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, fmt.Errorf("%w: identifier and password required", domain.ErrValidation)
	}

	user, err := s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// Corrupt stored hash: a server-side fault, not a login failure.
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("stored password hash unreadable")
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &ports.LoginResult{
		Token:    token,
		Role:     user.Role,
		Redirect: user.Role.DashboardPath(),
		User:     user,
	}, nil
}

func (s *AuthService) lookup(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return s.repo.FindByEmail(ctx, strings.ToLower(identifier))
}
