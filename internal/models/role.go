// ABOUTME: Closed role type with the fixed role-to-dashboard mapping
// ABOUTME: Roles gate view access and determine the default landing route

package models

import "fmt"

// Role identifies what a user can see and do.
// The set is closed; anything else coming off the wire is invalid.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleAlumni     Role = "alumni"
	RoleStudent    Role = "student"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleSuperAdmin, RoleAdmin, RoleAlumni, RoleStudent}

// ParseRole validates a wire-format role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleAlumni, RoleStudent:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleAlumni, RoleStudent:
		return true
	}
	return false
}

// DashboardPath returns the default landing route for the role.
// This is the single mapping used by both login redirects and the route guard.
func (r Role) DashboardPath() string {
	switch r {
	case RoleSuperAdmin:
		return "/super-admin/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleAlumni:
		return "/alumni/dashboard"
	case RoleStudent:
		return "/student/dashboard"
	default:
		return "/login"
	}
}

// Label returns the human-readable role name.
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Institution Admin"
	case RoleAlumni:
		return "Alumni"
	case RoleStudent:
		return "Student"
	default:
		return string(r)
	}
}
