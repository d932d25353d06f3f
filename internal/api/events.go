// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/bookitnow/bookitnow-web/internal/model"
)

// ListEvents fetches the public event list. No authentication required.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.doJSON(ctx, http.MethodGet, "/api/events", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ImageUpload carries an already-validated image file for event creation.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateEventInput holds the multipart fields for event creation.
// EventDate is passed through verbatim; the API parses it.
type CreateEventInput struct {
	Title       string
	Description string
	EventDate   string
	Location    string
	TotalSeats  int
	Image       *ImageUpload
}

// CreateEvent submits a new event as multipart form data. The created
// event starts out pending until an admin acts on it.
func (c *Client) CreateEvent(ctx context.Context, token string, in CreateEventInput) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"eventDate":   in.EventDate,
		"location":    in.Location,
		"totalSeats":  strconv.Itoa(in.TotalSeats),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	if in.Image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`,
			escapeQuotes(in.Image.Filename)))
		header.Set("Content-Type", in.Image.ContentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return fmt.Errorf("creating image part: %w", err)
		}
		if _, err := part.Write(in.Image.Data); err != nil {
			return fmt.Errorf("writing image data: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	_, err := c.do(ctx, http.MethodPost, "/api/events", token, w.FormDataContentType(), &buf)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
