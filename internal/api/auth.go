// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"net/http"

	"github.com/bookitnow/bookitnow-web/internal/model"
)

// AuthResponse is the payload of a successful login or registration.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a bearer token and the account identity.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the same payload as Login.
// Role must be one of the closed role set; the server enforces it too.
func (c *Client) Register(ctx context.Context, name, email, password, role string) (*AuthResponse, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
