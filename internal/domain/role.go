package domain

import "slices"

// Role is an operator role carried in admin JWT claims.
type Role string

const (
	// RoleAdmin can provision, delete and offboard tenants
	RoleAdmin Role = "admin"

	// RoleSupport can look tenants up but not change them
	RoleSupport Role = "support"
)

var ValidRoles = []Role{RoleAdmin, RoleSupport}

func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}
