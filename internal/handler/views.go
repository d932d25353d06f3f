// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"github.com/bookitnow/bookitnow-web/internal/api"
	"github.com/bookitnow/bookitnow-web/internal/model"
)

// eventView wraps an Event with its image resolved against the API
// origin, which is where uploaded images are served from.
type eventView struct {
	model.Event
	ImageURL string
}

func eventViews(c *api.Client, events []model.Event) []eventView {
	views := make([]eventView, 0, len(events))
	for _, ev := range events {
		views = append(views, eventView{Event: ev, ImageURL: c.ImageURL(ev.Image)})
	}
	return views
}

// bookingView pairs a booking with its resolved event. Event shadows the
// raw reference and is nil when the API returned only an id; templates
// render a fallback then.
type bookingView struct {
	model.Booking
	Event *model.Event
}

func bookingViews(bookings []model.Booking) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView{Booking: b, Event: b.Event.Embedded})
	}
	return views
}
