package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/clinic-system/internal/core/domain"
	"github.com/medicore/clinic-system/internal/core/ports"
)

// AccountHandler serves the authenticated read endpoints behind the role
// guards.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type profileResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type userListResponse struct {
	Success bool           `json:"success"`
	Users   []*domain.User `json:"users"`
}

type overviewResponse struct {
	Success  bool                 `json:"success"`
	Overview *ports.StaffOverview `json:"overview"`
}

// Me returns the caller's own user record.
//
// @Summary      Current user profile
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  messageResponse
// @Router       /me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	userID, err := ctxSubject(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Success: true, User: user})
}

// ListUsers returns every account. Admin only.
//
// @Summary      List all user accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /admin/users [get]
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.accounts.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Success: true, Users: users})
}

// Overview returns population counts for the doctor dashboard. Doctor only.
//
// @Summary      Staff overview
// @Tags         doctor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /doctor/overview [get]
func (h *AccountHandler) Overview(c echo.Context) error {
	overview, err := h.accounts.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overviewResponse{Success: true, Overview: overview})
}

// PatientProfile returns the calling patient's own record. Patient only.
//
// @Summary      Patient profile
// @Tags         patient
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /patient/profile [get]
func (h *AccountHandler) PatientProfile(c echo.Context) error {
	userID, err := ctxSubject(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Profile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Success: true, User: user})
}
