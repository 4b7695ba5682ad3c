package domain

import "fmt"

// Role is a label attached to a user. It carries no permission semantics.
type Role string

// Possible role values
const (
	RoleClassic Role = "Classic"
	RoleVip     Role = "Vip"
	RoleAdmin   Role = "Admin"
	RoleOwner   Role = "Owner"
)

// Roles lists every role in declaration order.
func Roles() []Role {
	return []Role{RoleClassic, RoleVip, RoleAdmin, RoleOwner}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// ParseRole maps s to a role by case-sensitive exact match. Anything that
// does not match one of the four names becomes RoleClassic.
func ParseRole(s string) Role {
	role, err := ParseRoleStrict(s)
	if err != nil {
		return RoleClassic
	}
	return role
}

// ParseRoleStrict is ParseRole without the fallback: unrecognised input
// yields ErrUnknownRole.
func ParseRoleStrict(s string) (Role, error) {
	r := Role(s)
	if !isValidRole(r) {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// isValidRole checks if the given role is one of the defined roles.
func isValidRole(role Role) bool {
	switch role {
	case RoleClassic, RoleVip, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}
