// ABOUTME: Tests for the closed role set and its dashboard mapping
// ABOUTME: The role-to-route table is the single routing source of truth

package models

import "testing"

func TestRole_DashboardPath(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleSuperAdmin, "/super-admin/dashboard"},
		{RoleAdmin, "/admin/dashboard"},
		{RoleAlumni, "/alumni/dashboard"},
		{RoleStudent, "/student/dashboard"},
		{Role("unknown"), "/login"},
	}
	for _, tt := range tests {
		if got := tt.role.DashboardPath(); got != tt.want {
			t.Errorf("DashboardPath(%s) = %s, want %s", tt.role, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		parsed, err := ParseRole(string(r))
		if err != nil || parsed != r {
			t.Errorf("ParseRole(%s) = %s, %v", r, parsed, err)
		}
	}

	for _, bad := range []string{"", "superadmin", "SUPER_ADMIN", "root"} {
		if _, err := ParseRole(bad); err == nil {
			t.Errorf("ParseRole(%q) should fail", bad)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	if Role("moderator").Valid() {
		t.Error("unknown role must be invalid")
	}
	if !RoleAlumni.Valid() {
		t.Error("alumni must be valid")
	}
}

func TestAccount_FullName(t *testing.T) {
	a := Account{FirstName: "Rahul", LastName: "Verma", Username: "rahulv"}
	if got := a.FullName(); got != "Rahul Verma" {
		t.Errorf("FullName = %q", got)
	}

	a = Account{Username: "rahulv"}
	if got := a.FullName(); got != "rahulv" {
		t.Errorf("FullName without names = %q, want username", got)
	}
}
