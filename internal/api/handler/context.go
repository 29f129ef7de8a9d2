package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/clinic-system/internal/api/middleware"
)

// ctxSubject extracts the authenticated subject injected by the guard and
// fast-fails when the middleware did not run. A protected handler reached
// without claims is a wiring bug, not a client error, but 401 is still the
// safe answer.
func ctxSubject(c echo.Context) (userID string, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
