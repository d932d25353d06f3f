// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"fmt"
)

// Booking statuses as reported by the API.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking represents a seat booking. Depending on the endpoint, the API
// returns the related event and user either as a bare identifier or as a
// fully embedded document; EventRef and UserRef resolve that once at the
// JSON boundary so render code never inspects shapes.
type Booking struct {
	ID       string   `json:"_id"`
	TicketID string   `json:"ticketId"`
	Status   string   `json:"status"`
	Event    EventRef `json:"event"`
	User     UserRef  `json:"user"`
}

// IsConfirmed returns true if the booking is confirmed.
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingConfirmed
}

// EventRef is a tagged variant: either a reference (just the id) or an
// embedded Event. Embedded is non-nil only in the embedded case.
type EventRef struct {
	ID       string
	Embedded *Event
}

// UnmarshalJSON accepts either a JSON string (reference) or an object
// (embedded event).
func (r *EventRef) UnmarshalJSON(data []byte) error {
	*r = EventRef{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("decoding embedded event: %w", err)
	}
	r.ID = ev.ID
	r.Embedded = &ev
	return nil
}

// IsEmbedded returns true if the full event document was embedded.
func (r EventRef) IsEmbedded() bool {
	return r.Embedded != nil
}

// UserRef is a tagged variant: either a reference (just the id) or an
// embedded User.
type UserRef struct {
	ID       string
	Embedded *User
}

// UnmarshalJSON accepts either a JSON string (reference) or an object
// (embedded user).
func (r *UserRef) UnmarshalJSON(data []byte) error {
	*r = UserRef{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return fmt.Errorf("decoding embedded user: %w", err)
	}
	r.ID = u.ID
	r.Embedded = &u
	return nil
}

// IsEmbedded returns true if the full user document was embedded.
func (r UserRef) IsEmbedded() bool {
	return r.Embedded != nil
}
