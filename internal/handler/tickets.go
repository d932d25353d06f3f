// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/bookitnow/bookitnow-web/internal/api"
	"github.com/bookitnow/bookitnow-web/internal/middleware"
	"github.com/bookitnow/bookitnow-web/internal/model"
	"github.com/bookitnow/bookitnow-web/internal/render"
	"github.com/bookitnow/bookitnow-web/internal/session"
)

// qrSize is the pixel size of generated ticket QR codes.
const qrSize = 256

// TicketsHandler serves the caller's issued tickets with scannable QR
// codes, generated locally from the ticket id.
type TicketsHandler struct {
	api      *api.Client
	renderer *render.Renderer
	sessions *session.Manager
}

// NewTicketsHandler creates a new TicketsHandler.
func NewTicketsHandler(apiClient *api.Client, renderer *render.Renderer, sessions *session.Manager) *TicketsHandler {
	return &TicketsHandler{api: apiClient, renderer: renderer, sessions: sessions}
}

// ticketsData is the page data for the tickets page.
type ticketsData struct {
	Tickets []bookingView
}

// Tickets renders the caller's confirmed bookings as tickets.
func (h *TicketsHandler) Tickets(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	bookings, err := h.api.MyBookings(r.Context(), sess.Token)
	if err != nil {
		if api.IsUnauthorized(err) {
			if logoutErr := h.sessions.Logout(r.Context()); logoutErr != nil {
				slog.Error("session logout error", "error", logoutErr)
			}
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}
		slog.Error("failed to fetch tickets", "user_id", sess.User.ID, "error", err)
		renderPage(w, r, h.renderer, "tickets", render.TemplateData{
			Title: "My Tickets - BookItNow",
			Error: api.ErrorMessage(err, "Failed to load tickets"),
			Data:  ticketsData{},
		})
		return
	}

	confirmed := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsConfirmed() && b.TicketID != "" {
			confirmed = append(confirmed, b)
		}
	}

	renderPage(w, r, h.renderer, "tickets", render.TemplateData{
		Title: "My Tickets - BookItNow",
		Data:  ticketsData{Tickets: bookingViews(confirmed)},
	})
}

// TicketQR serves a PNG QR code for one of the caller's own tickets.
// Ownership is checked against the caller's bookings so ticket ids cannot
// be enumerated across accounts.
func (h *TicketsHandler) TicketQR(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)
	ticketID := chi.URLParam(r, "ticketID")

	bookings, err := h.api.MyBookings(r.Context(), sess.Token)
	if err != nil {
		slog.Error("failed to verify ticket ownership", "ticket_id", ticketID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	owned := false
	for _, b := range bookings {
		if b.TicketID == ticketID && b.IsConfirmed() {
			owned = true
			break
		}
	}
	if !owned {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(ticketID, qrcode.Medium, qrSize)
	if err != nil {
		logAndInternalError(w, "failed to encode ticket QR", "ticket_id", ticketID, "error", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, no-store")
	_, _ = w.Write(png)
}
