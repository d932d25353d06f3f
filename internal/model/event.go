// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package model

import "time"

// Event approval statuses. The workflow is linear: pending is the only
// non-terminal state, and it moves to approved or rejected exactly once.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Event represents an event listing as returned by the API.
// AvailableSeats <= TotalSeats is enforced server-side; the client
// only displays the values.
type Event struct {
	ID             string    `json:"_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	EventDate      time.Time `json:"eventDate"`
	Location       string    `json:"location"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	Status         string    `json:"status"`
	Image          string    `json:"image,omitempty"`
}

// IsPending returns true if the event awaits an admin decision.
func (e Event) IsPending() bool {
	return e.Status == StatusPending
}

// ValidStatus reports whether status is one of the closed status set.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
