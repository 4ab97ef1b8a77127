package domain

import (
	"fmt"
	"strings"
)

// UserRole is the lookup table row behind users.role_id.
type UserRole struct {
	ID       int64  `json:"id"`
	RoleName string `json:"role_name"`
}

func (r UserRole) Validate() error {
	if r.RoleName == "" {
		return fmt.Errorf("%w: role_name is required", ErrValidation)
	}
	return nil
}

func (r UserRole) WithID(id int64) UserRole {
	r.ID = id
	return r
}

// Role is the closed set of identities a login can resolve to.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleAirline       Role = "airline"
	RoleCustomer      Role = "customer"
)

// ParseRole maps a stored role name onto the closed variant. Unknown
// names are rejected rather than carried around as raw strings.
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(name) {
	case string(RoleAdministrator):
		return RoleAdministrator, nil
	case string(RoleAirline):
		return RoleAirline, nil
	case string(RoleCustomer):
		return RoleCustomer, nil
	default:
		return "", fmt.Errorf("unknown role %q", name)
	}
}
