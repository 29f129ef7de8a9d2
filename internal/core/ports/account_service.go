package ports

import (
	"context"

	"github.com/medicore/clinic-system/internal/core/domain"
)

// StaffOverview summarizes the user population for the doctor dashboard.
type StaffOverview struct {
	Doctors  int64 `json:"doctors"`
	Patients int64 `json:"patients"`
}

// AccountService serves the authenticated read endpoints.
type AccountService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	Overview(ctx context.Context) (*StaffOverview, error)
}

// ProfileCache is a best-effort read cache for user records. A miss or a
// cache failure is never an error for the caller.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*domain.User, bool)
	Set(ctx context.Context, user *domain.User)
}
