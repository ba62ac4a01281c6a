package auth

import (
	"fmt"
	"slices"
)

// Role is one of a closed set of authorization roles shared by both auth modes.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

var roles = []Role{RoleAdmin, RoleUser, RoleGuest}

// Roles returns every known role.
func Roles() []Role {
	return slices.Clone(roles)
}

func (r Role) Valid() bool {
	return slices.Contains(roles, r)
}

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}
