// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/bookitnow/bookitnow-web/internal/api"
	"github.com/bookitnow/bookitnow-web/internal/middleware"
	"github.com/bookitnow/bookitnow-web/internal/render"
	"github.com/bookitnow/bookitnow-web/internal/session"
)

// OrganizerHandler serves the organizer area and the event-creation form.
type OrganizerHandler struct {
	api      *api.Client
	renderer *render.Renderer
	sessions *session.Manager
}

// NewOrganizerHandler creates a new OrganizerHandler.
func NewOrganizerHandler(apiClient *api.Client, renderer *render.Renderer, sessions *session.Manager) *OrganizerHandler {
	return &OrganizerHandler{api: apiClient, renderer: renderer, sessions: sessions}
}

// Home renders the organizer landing page.
func (h *OrganizerHandler) Home(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, "organizer", render.TemplateData{
		Title: "My Events - BookItNow",
	})
}

// createEventData re-populates the form after a validation or API error
// so nothing entered is lost. A rejected image is simply not re-selected.
type createEventData struct {
	Title       string
	Description string
	EventDate   string
	Location    string
	TotalSeats  string
}

// CreateForm renders the event-creation form.
func (h *OrganizerHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, "organizer_create", render.TemplateData{
		Title: "Create New Event - BookItNow",
		Data:  createEventData{},
	})
}

// Create handles the event-creation submission. The image is validated
// locally (type and size) before anything is sent to the API; a rejected
// image means no network request at all. Created events start out pending
// until an admin acts on them.
func (h *OrganizerHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r)

	// One extra MiB of headroom for the text fields.
	if err := r.ParseMultipartForm(MaxImageSize + 1024*1024); err != nil {
		h.renderCreateError(w, r, createEventData{}, MsgImageTooLarge)
		return
	}

	data := createEventData{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		EventDate:   r.FormValue("eventDate"),
		Location:    r.FormValue("location"),
		TotalSeats:  r.FormValue("totalSeats"),
	}

	if data.Title == "" || data.Description == "" || data.EventDate == "" || data.Location == "" {
		h.renderCreateError(w, r, data, "All fields are required")
		return
	}
	totalSeats, err := strconv.Atoi(data.TotalSeats)
	if err != nil || totalSeats <= 0 {
		h.renderCreateError(w, r, data, "Total seats must be a positive number")
		return
	}

	input := api.CreateEventInput{
		Title:       data.Title,
		Description: data.Description,
		EventDate:   data.EventDate,
		Location:    data.Location,
		TotalSeats:  totalSeats,
	}

	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer func() { _ = file.Close() }()

		image, msg := validateImage(file, header.Filename, header.Header.Get("Content-Type"), header.Size)
		if msg != "" {
			h.renderCreateError(w, r, data, msg)
			return
		}
		input.Image = image
	}

	if err := h.api.CreateEvent(r.Context(), sess.Token, input); err != nil {
		if api.IsUnauthorized(err) {
			if logoutErr := h.sessions.Logout(r.Context()); logoutErr != nil {
				slog.Error("session logout error", "error", logoutErr)
			}
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}
		slog.Error("failed to create event", "organizer_id", sess.User.ID, "error", err)
		h.renderCreateError(w, r, data, api.ErrorMessage(err, "Failed to create event"))
		return
	}

	slog.Info("event created", "organizer_id", sess.User.ID, "title", data.Title)
	flashSuccess(w, r, h.renderer, RouteOrganizer, "Event submitted for approval")
}

func (h *OrganizerHandler) renderCreateError(w http.ResponseWriter, r *http.Request, data createEventData, msg string) {
	renderPage(w, r, h.renderer, "organizer_create", render.TemplateData{
		Title: "Create New Event - BookItNow",
		Error: msg,
		Data:  data,
	})
}

// validateImage checks that the upload is an image no larger than
// MaxImageSize. On rejection the returned message is non-empty and no
// bytes leave the process.
func validateImage(file io.Reader, filename, contentType string, size int64) (*api.ImageUpload, string) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, MsgImageNotImage
	}
	if size > MaxImageSize {
		return nil, MsgImageTooLarge
	}

	// MaxImageSize+1 so a lying Content-Length can't sneak extra bytes past.
	payload, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, "Failed to read image"
	}
	if int64(len(payload)) > MaxImageSize {
		return nil, MsgImageTooLarge
	}

	return &api.ImageUpload{
		Filename:    filename,
		ContentType: contentType,
		Data:        payload,
	}, ""
}
