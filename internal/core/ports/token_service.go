package ports

import (
	"time"

	"github.com/medicore/clinic-system/internal/core/domain"
)

// TokenService mints and verifies signed bearer tokens. The signing key is
// fixed at construction and shared read-only across requests.
type TokenService interface {
	// Issue returns a signed token for the subject with issuedAt = now and
	// expiresAt = now + ttl.
	Issue(subject string, role domain.Role, ttl time.Duration) (string, error)

	// Verify checks the signature first, then expiry, and returns the
	// decoded claims. Fails with domain.ErrTokenInvalid or
	// domain.ErrTokenExpired.
	Verify(token string) (*domain.Claims, error)
}
