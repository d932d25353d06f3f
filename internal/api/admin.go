// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"

	"github.com/bookitnow/bookitnow-web/internal/model"
)

// AdminEvents fetches all events regardless of status. Admin token required.
func (c *Client) AdminEvents(ctx context.Context, token string) ([]model.Event, error) {
	var out []model.Event
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/events", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminBookings fetches all bookings on the platform. Admin token required.
func (c *Client) AdminBookings(ctx context.Context, token string) ([]model.Booking, error) {
	var out []model.Booking
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminUsers fetches all accounts. Admin token required.
func (c *Client) AdminUsers(ctx context.Context, token string) ([]model.User, error) {
	var out []model.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateEventStatus moves a pending event to approved or rejected.
// The workflow is linear; the server rejects transitions out of a
// terminal state.
func (c *Client) UpdateEventStatus(ctx context.Context, token, eventID, status string) error {
	body := map[string]string{"status": status}
	return c.doJSON(ctx, http.MethodPut, "/api/admin/events/"+eventID, token, body, nil)
}
