// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"
)

// Error is a server-reported failure: the API answered with a non-2xx
// status. Message is the server's own message when the payload carried
// one, else a generic status description.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is an API rejection of the bearer
// token (expired or invalid). The session is only invalidated reactively
// on this signal; the client never inspects the token itself.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// ErrorMessage returns the message to show the user for a failed call:
// the server's own message for API errors, a generic transport message
// otherwise.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if fallback != "" {
		return fallback
	}
	return "Something went wrong. Please try again."
}
