package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Role
	}{
		{name: "administrator", input: "administrator", expected: RoleAdministrator},
		{name: "airline", input: "airline", expected: RoleAirline},
		{name: "customer", input: "customer", expected: RoleCustomer},
		{name: "case insensitive", input: "Customer", expected: RoleCustomer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		})
	}
}

func TestParseRole_Unknown(t *testing.T) {
	_, err := ParseRole("superuser")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestUserRole_Validate(t *testing.T) {
	assert.NoError(t, UserRole{RoleName: "customer"}.Validate())

	err := UserRole{}.Validate()
	assert.ErrorIs(t, err, ErrValidation)
}
