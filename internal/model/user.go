// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

// Package model defines the domain entities this client receives from the
// ticketing API: User, Event, and Booking. All of them are owned by the API
// server; the client holds transient copies only.
package model

// User roles. The set is closed: every access decision branches on
// exactly these three values.
const (
	RoleUser      = "user"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// User represents a platform account as returned by the API.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin returns true if the user has admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsOrganizer returns true if the user has organizer role.
func (u *User) IsOrganizer() bool {
	return u != nil && u.Role == RoleOrganizer
}

// ValidRole reports whether role is one of the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}
