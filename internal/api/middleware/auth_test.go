package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medicore/clinic-system/internal/core/domain"
	"github.com/medicore/clinic-system/internal/core/service"
)

func testGate() (*service.Gate, *service.JWTTokenService) {
	tokens := service.NewJWTTokenService("secret")
	return service.NewGate(tokens), tokens
}

func newGuardContext(e *echo.Echo, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGuard_ValidToken(t *testing.T) {
	e := echo.New()
	gate, tokens := testGate()

	signed, err := tokens.Issue("user_1", domain.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := newGuardContext(e, "Bearer "+signed)

	called := false
	handler := Guard(gate, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != "user_1" {
			t.Fatalf("user_id not set")
		}
		if c.Get(ContextRole) != "admin" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuard_MissingHeader(t *testing.T) {
	e := echo.New()
	gate, _ := testGate()

	c, _ := newGuardContext(e, "")

	handler := Guard(gate)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestGuard_BadScheme(t *testing.T) {
	e := echo.New()
	gate, _ := testGate()

	c, _ := newGuardContext(e, "Token abc")

	handler := Guard(gate)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestGuard_ExpiredToken(t *testing.T) {
	e := echo.New()
	gate, tokens := testGate()

	signed, err := tokens.Issue("user_1", domain.RoleAdmin, -time.Minute)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newGuardContext(e, "Bearer "+signed)

	handler := Guard(gate, domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestGuard_RoleMismatch(t *testing.T) {
	e := echo.New()
	gate, tokens := testGate()

	signed, err := tokens.Issue("user_1", domain.RolePatient, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, _ := newGuardContext(e, "Bearer "+signed)

	handler := AdminOnly(gate)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestGuard_PresetsShareTheGate(t *testing.T) {
	e := echo.New()
	gate, tokens := testGate()

	presets := map[string]struct {
		mw   echo.MiddlewareFunc
		role domain.Role
	}{
		"admin_only":   {AdminOnly(gate), domain.RoleAdmin},
		"doctor_only":  {DoctorOnly(gate), domain.RoleDoctor},
		"patient_only": {PatientOnly(gate), domain.RolePatient},
	}

	for name, tc := range presets {
		signed, err := tokens.Issue("user_1", tc.role, time.Hour)
		if err != nil {
			t.Fatalf("%s: issue token: %v", name, err)
		}

		c, rec := newGuardContext(e, "Bearer "+signed)
		handler := tc.mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("%s: expected allow, got %v", name, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", name, rec.Code)
		}
	}
}

func TestGuard_LoginRequiredAllowsAnyRole(t *testing.T) {
	e := echo.New()
	gate, tokens := testGate()

	for _, role := range domain.AllRoles {
		signed, err := tokens.Issue("user_1", role, time.Hour)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}

		c, rec := newGuardContext(e, "Bearer "+signed)
		handler := LoginRequired(gate)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("role %s: expected allow, got %v", role, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("role %s: expected 200, got %d", role, rec.Code)
		}
	}
}
