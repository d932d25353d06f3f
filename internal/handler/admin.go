// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookitnow/bookitnow-web/internal/api"
	"github.com/bookitnow/bookitnow-web/internal/middleware"
	"github.com/bookitnow/bookitnow-web/internal/model"
	"github.com/bookitnow/bookitnow-web/internal/render"
	"github.com/bookitnow/bookitnow-web/internal/session"
)

// AdminHandler serves the admin moderation dashboard.
type AdminHandler struct {
	api      *api.Client
	renderer *render.Renderer
	sessions *session.Manager
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(apiClient *api.Client, renderer *render.Renderer, sessions *session.Manager) *AdminHandler {
	return &AdminHandler{api: apiClient, renderer: renderer, sessions: sessions}
}

// adminData is the page data for the admin dashboard. Only the active
// tab's slice is populated; switching tabs is a fresh request and a fresh
// fetch for that tab only.
type adminData struct {
	ActiveTab string
	Events    []eventView
	Bookings  []bookingView
	Users     []model.User
}

// Dashboard renders one tab of the admin dashboard, selected by the tab
// query parameter: events (default), bookings, or users.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	tab := r.URL.Query().Get("tab")
	switch tab {
	case TabBookings, TabUsers:
	default:
		tab = TabEvents
	}

	data := adminData{ActiveTab: tab}

	var err error
	switch tab {
	case TabEvents:
		var events []model.Event
		if events, err = h.api.AdminEvents(r.Context(), sess.Token); err == nil {
			data.Events = eventViews(h.api, events)
		}
	case TabBookings:
		var bookings []model.Booking
		if bookings, err = h.api.AdminBookings(r.Context(), sess.Token); err == nil {
			data.Bookings = bookingViews(bookings)
		}
	case TabUsers:
		data.Users, err = h.api.AdminUsers(r.Context(), sess.Token)
	}

	errMsg := ""
	if err != nil {
		if h.expireSession(w, r, err) {
			return
		}
		slog.Error("failed to fetch admin data", "tab", tab, "error", err)
		errMsg = api.ErrorMessage(err, "Failed to load data")
	}

	renderPage(w, r, h.renderer, "admin", render.TemplateData{
		Title: "Admin Dashboard - BookItNow",
		Error: errMsg,
		Data:  data,
	})
}

// UpdateEventStatus approves or rejects a pending event, then returns to
// the events tab so the list is refetched with the new status. The
// POST/redirect cycle keeps each action single-flight.
func (h *AdminHandler) UpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	eventID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteAdmin, "Invalid form data")
		return
	}

	status := r.FormValue("status")
	if status != model.StatusApproved && status != model.StatusRejected {
		flashError(w, r, h.renderer, RouteAdmin, "Invalid status")
		return
	}

	if err := h.api.UpdateEventStatus(r.Context(), sess.Token, eventID, status); err != nil {
		if h.expireSession(w, r, err) {
			return
		}
		slog.Error("failed to update event status", "event_id", eventID, "status", status, "error", err)
		flashError(w, r, h.renderer, RouteAdmin, api.ErrorMessage(err, "Failed to update event status"))
		return
	}

	slog.Info("event status updated", "event_id", eventID, "status", status, "admin_id", sess.User.ID)
	flashSuccess(w, r, h.renderer, RouteAdmin, "Event "+status)
}

func (h *AdminHandler) expireSession(w http.ResponseWriter, r *http.Request, err error) bool {
	if !api.IsUnauthorized(err) {
		return false
	}
	if logoutErr := h.sessions.Logout(r.Context()); logoutErr != nil {
		slog.Error("session logout error", "error", logoutErr)
	}
	http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	return true
}
