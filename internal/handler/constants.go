// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

// Route paths.
const (
	RouteRoot            = "/"
	RouteEvents          = "/events"
	RouteLogin           = "/login"
	RouteRegister        = "/register"
	RouteLogout          = "/logout"
	RouteDashboard       = "/dashboard"
	RouteTickets         = "/tickets"
	RouteAdmin           = "/admin"
	RouteOrganizer       = "/organizer"
	RouteOrganizerCreate = "/organizer/create"
)

// Admin dashboard tabs.
const (
	TabEvents   = "events"
	TabBookings = "bookings"
	TabUsers    = "users"
)

// MaxImageSize is the largest event image accepted before any request is
// sent to the API.
const MaxImageSize = 5 * 1024 * 1024

// Client-side validation messages for the event image.
const (
	MsgImageNotImage = "Only image files are allowed"
	MsgImageTooLarge = "Image size must be less than 5MB"
)
