package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Role
	}{
		{"Classic", RoleClassic},
		{"Vip", RoleVip},
		{"Admin", RoleAdmin},
		{"Owner", RoleOwner},
		{"vip", RoleClassic},
		{"VIP", RoleClassic},
		{"Banana", RoleClassic},
		{"", RoleClassic},
		{" Vip", RoleClassic},
	}

	for _, tc := range tests {
		if got := ParseRole(tc.input); got != tc.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseRoleStrict(t *testing.T) {
	t.Parallel()

	for _, role := range Roles() {
		got, err := ParseRoleStrict(role.String())
		if err != nil {
			t.Errorf("Expected no error for %s, got %v", role, err)
		}
		if got != role {
			t.Errorf("Expected %s, got %s", role, got)
		}
	}

	_, err := ParseRoleStrict("vip")
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Expected ErrUnknownRole, got %v", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation in chain, got %v", err)
	}
}
