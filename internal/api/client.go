// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

// Package api is the HTTP client for the BookItNow ticketing API. It owns
// the base URL, attaches the bearer token, and turns the server's error
// payloads into typed errors. It performs no retries and no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const httpTimeout = 30 * time.Second

// Client calls the ticketing API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given API origin.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ImageURL resolves a server-relative image path (e.g. /uploads/x.jpg)
// against the API origin. Absolute URLs pass through unchanged.
func (c *Client) ImageURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// do performs a request against the API. When token is non-empty it is sent
// as a bearer credential. A non-2xx response is returned as *Error with the
// server's message when one is present.
func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// doJSON marshals body (when non-nil), performs the request, and decodes a
// JSON response into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
		contentType = "application/json"
	}

	respBody, err := c.do(ctx, method, path, token, contentType, reader)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError extracts the server's human-readable message when the error
// payload carries one.
func decodeError(statusCode int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		if payload.Message != "" {
			msg = payload.Message
		} else if payload.Error != "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", statusCode)
	}
	return &Error{StatusCode: statusCode, Message: msg}
}
