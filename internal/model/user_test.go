// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package model

import "testing"

func TestUser_RoleChecks(t *testing.T) {
	tests := []struct {
		name          string
		user          *User
		wantAdmin     bool
		wantOrganizer bool
	}{
		{"admin", &User{Role: RoleAdmin}, true, false},
		{"organizer", &User{Role: RoleOrganizer}, false, true},
		{"user", &User{Role: RoleUser}, false, false},
		{"nil user", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.IsAdmin(); got != tt.wantAdmin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.wantAdmin)
			}
			if got := tt.user.IsOrganizer(); got != tt.wantOrganizer {
				t.Errorf("IsOrganizer() = %v, want %v", got, tt.wantOrganizer)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleOrganizer, RoleAdmin} {
		if !ValidRole(role) {
			t.Errorf("expected '%s' to be valid", role)
		}
	}
	for _, role := range []string{"", "superadmin", "Admin"} {
		if ValidRole(role) {
			t.Errorf("expected '%s' to be invalid", role)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusApproved, StatusRejected} {
		if !ValidStatus(status) {
			t.Errorf("expected '%s' to be valid", status)
		}
	}
	for _, status := range []string{"", "cancelled", "Approved"} {
		if ValidStatus(status) {
			t.Errorf("expected '%s' to be invalid", status)
		}
	}
}

func TestEvent_IsPending(t *testing.T) {
	pending := Event{Status: StatusPending}
	if !pending.IsPending() {
		t.Error("expected pending")
	}
	approved := Event{Status: StatusApproved}
	if approved.IsPending() {
		t.Error("expected not pending for approved event")
	}
}
