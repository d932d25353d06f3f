// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

// Package handler contains the HTTP handlers for every page the client
// renders. Each page fetches from the ticketing API, holds the result for
// the lifetime of the request, and renders it; nothing is cached.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/bookitnow/bookitnow-web/internal/api"
	"github.com/bookitnow/bookitnow-web/internal/render"
)

// HomeHandler serves the public pages: landing and event browsing.
type HomeHandler struct {
	api      *api.Client
	renderer *render.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(apiClient *api.Client, renderer *render.Renderer) *HomeHandler {
	return &HomeHandler{api: apiClient, renderer: renderer}
}

// homeData is the page data for the landing and browse pages.
type homeData struct {
	Events []eventView
}

// Home renders the landing page with the public event list.
// A fetch failure degrades to an empty grid with an inline banner; the
// page itself never errors out.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data, errMsg := h.fetchEvents(r)
	renderPage(w, r, h.renderer, "home", render.TemplateData{
		Title: "BookItNow - Discover Amazing Events",
		Error: errMsg,
		Data:  data,
	})
}

// Events renders the full browse page.
func (h *HomeHandler) Events(w http.ResponseWriter, r *http.Request) {
	data, errMsg := h.fetchEvents(r)
	renderPage(w, r, h.renderer, "events", render.TemplateData{
		Title: "Events - BookItNow",
		Error: errMsg,
		Data:  data,
	})
}

func (h *HomeHandler) fetchEvents(r *http.Request) (homeData, string) {
	events, err := h.api.ListEvents(r.Context())
	if err != nil {
		slog.Error("failed to fetch events", "error", err)
		return homeData{}, api.ErrorMessage(err, "Failed to load events")
	}
	return homeData{Events: eventViews(h.api, events)}, ""
}
