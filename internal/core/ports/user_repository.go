package ports

import (
	"context"

	"github.com/medicore/clinic-system/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Implementations must enforce uniqueness of username and email atomically
// at insert time; a violated constraint surfaces as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
