package ports

import (
	"context"

	"github.com/medicore/clinic-system/internal/core/domain"
)

// RegisterInput is the patient self-registration payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Contact  string
}

// LoginResult is returned on a successful login. Redirect is the
// role-dependent landing page for the client to navigate to.
type LoginResult struct {
	Token    string
	Role     domain.Role
	Redirect string
	User     *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
}
