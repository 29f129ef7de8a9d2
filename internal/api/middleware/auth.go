package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medicore/clinic-system/internal/api/metrics"
	"github.com/medicore/clinic-system/internal/core/domain"
	"github.com/medicore/clinic-system/internal/core/service"
)

// Context keys under which the guard stores the verified claims.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Guard returns echo middleware that routes the request through the single
// authorization gate. An empty role list admits any authenticated role.
// On success the decoded subject and role are injected into the context.
func Guard(gate *service.Gate, roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			claims, err := gate.Authorize(bearerToken(c), roles...)
			metrics.AuthorizeDuration.Observe(time.Since(start).Seconds())

			if err != nil {
				switch {
				case errors.Is(err, domain.ErrForbidden):
					metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				case errors.Is(err, domain.ErrUnauthenticated):
					metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
				}
				return err
			}

			c.Set(ContextUserID, claims.Subject)
			c.Set(ContextRole, string(claims.Role))
			return next(c)
		}
	}
}

// AdminOnly admits only administrators.
func AdminOnly(gate *service.Gate) echo.MiddlewareFunc {
	return Guard(gate, domain.RoleAdmin)
}

// DoctorOnly admits only clinical staff.
func DoctorOnly(gate *service.Gate) echo.MiddlewareFunc {
	return Guard(gate, domain.RoleDoctor)
}

// PatientOnly admits only patients.
func PatientOnly(gate *service.Gate) echo.MiddlewareFunc {
	return Guard(gate, domain.RolePatient)
}

// LoginRequired admits any authenticated role.
func LoginRequired(gate *service.Gate) echo.MiddlewareFunc {
	return Guard(gate)
}

// bearerToken extracts the bearer credential from the Authorization header.
// Returns "" when the header is missing or not a bearer scheme; the gate
// treats that as unauthenticated.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
