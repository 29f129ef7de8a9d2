package domain

import "time"

// Role is the closed set of actor roles in the clinic system. Authorization
// checks are exhaustive over these three values; an unknown role never
// passes the gate.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// AllRoles is the full role set, used by the "any authenticated" guard.
var AllRoles = []Role{RoleAdmin, RoleDoctor, RolePatient}

// ParseRole converts a stored or presented role string into a Role.
// Returns false for anything outside the closed set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RolePatient:
		return Role(s), true
	}
	return "", false
}

// DashboardPath maps a role to its landing page. Pure function of the role.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleDoctor:
		return "/doctor/dashboard"
	case RolePatient:
		return "/patient/dashboard"
	}
	return "/"
}

// User models an authenticated actor in the system. Username and email are
// each globally unique; the role is fixed at creation time.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Contact      string    `json:"contact,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
