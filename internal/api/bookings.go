// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"

	"github.com/bookitnow/bookitnow-web/internal/model"
)

// MyBookings fetches the caller's bookings. Unlike the other list
// endpoints, this one wraps the result in a data envelope.
func (c *Client) MyBookings(ctx context.Context, token string) ([]model.Booking, error) {
	var out struct {
		Data []model.Booking `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/bookings/my-bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
