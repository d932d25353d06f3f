// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/bookitnow/bookitnow-web/internal/api"
	"github.com/bookitnow/bookitnow-web/internal/middleware"
	"github.com/bookitnow/bookitnow-web/internal/render"
	"github.com/bookitnow/bookitnow-web/internal/session"
)

// DashboardHandler serves the plain-user booking dashboard.
type DashboardHandler struct {
	api      *api.Client
	renderer *render.Renderer
	sessions *session.Manager
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(apiClient *api.Client, renderer *render.Renderer, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{api: apiClient, renderer: renderer, sessions: sessions}
}

// dashboardData is the page data for the booking dashboard.
type dashboardData struct {
	Bookings []bookingView
}

// Dashboard renders the caller's bookings. The guard has already required
// authentication; admins and organizers get a secondary redirect to their
// own areas before any fetch, admin taking priority.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	if sess.IsAdmin() {
		http.Redirect(w, r, RouteAdmin, http.StatusSeeOther)
		return
	}
	if sess.IsOrganizer() {
		http.Redirect(w, r, RouteOrganizer, http.StatusSeeOther)
		return
	}

	bookings, err := h.api.MyBookings(r.Context(), sess.Token)
	if err != nil {
		if h.expireSession(w, r, err) {
			return
		}
		slog.Error("failed to fetch bookings", "user_id", sess.User.ID, "error", err)
		renderPage(w, r, h.renderer, "dashboard", render.TemplateData{
			Title: "My Bookings - BookItNow",
			Error: api.ErrorMessage(err, "Failed to load bookings"),
			Data:  dashboardData{},
		})
		return
	}

	renderPage(w, r, h.renderer, "dashboard", render.TemplateData{
		Title: "My Bookings - BookItNow",
		Data:  dashboardData{Bookings: bookingViews(bookings)},
	})
}

// expireSession handles the API rejecting the stored token: the session
// is destroyed and the visitor returns to the login page. Reported true
// when the response has been written.
func (h *DashboardHandler) expireSession(w http.ResponseWriter, r *http.Request, err error) bool {
	if !api.IsUnauthorized(err) {
		return false
	}
	if logoutErr := h.sessions.Logout(r.Context()); logoutErr != nil {
		slog.Error("session logout error", "error", logoutErr)
	}
	http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	return true
}
