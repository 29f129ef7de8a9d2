package service

import (
	"errors"

	"github.com/medicore/clinic-system/internal/core/domain"
	"github.com/medicore/clinic-system/internal/core/ports"
)

// Gate is the single authorization check every protected operation routes
// through. The named guards below are role-set presets over Authorize, not
// independent logic paths.
type Gate struct {
	tokens ports.TokenService
}

func NewGate(tokens ports.TokenService) *Gate {
	return &Gate{tokens: tokens}
}

// Authorize verifies the presented token and checks its role against the
// required set. An empty required set means any authenticated role.
// Failures: domain.ErrUnauthenticated for a missing, invalid or expired
// token; domain.ErrForbidden for a role outside the set.
func (g *Gate) Authorize(token string, required ...domain.Role) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) || errors.Is(err, domain.ErrTokenExpired) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	if len(required) == 0 {
		required = domain.AllRoles
	}
	for _, r := range required {
		if claims.Role == r {
			return claims, nil
		}
	}
	return nil, domain.ErrForbidden
}

// AdminOnly allows only administrators.
func (g *Gate) AdminOnly(token string) (*domain.Claims, error) {
	return g.Authorize(token, domain.RoleAdmin)
}

// DoctorOnly allows only clinical staff.
func (g *Gate) DoctorOnly(token string) (*domain.Claims, error) {
	return g.Authorize(token, domain.RoleDoctor)
}

// PatientOnly allows only patients.
func (g *Gate) PatientOnly(token string) (*domain.Claims, error) {
	return g.Authorize(token, domain.RolePatient)
}

// LoginRequired allows any authenticated role.
func (g *Gate) LoginRequired(token string) (*domain.Claims, error) {
	return g.Authorize(token)
}
