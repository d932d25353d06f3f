// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/bookitnow/bookitnow-web/internal/api"
	"github.com/bookitnow/bookitnow-web/internal/model"
	"github.com/bookitnow/bookitnow-web/internal/render"
	"github.com/bookitnow/bookitnow-web/internal/session"
)

// AuthHandler handles login, registration, and logout.
type AuthHandler struct {
	api      *api.Client
	renderer *render.Renderer
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(apiClient *api.Client, renderer *render.Renderer, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{api: apiClient, renderer: renderer, sessions: sessions}
}

// loginData is re-rendered with the entered email on failure so the user
// does not retype it. The password is never echoed back.
type loginData struct {
	Email string
}

// registerData mirrors loginData for the registration form.
type registerData struct {
	Name  string
	Email string
	Role  string
}

// LoginForm renders the login page. Already-authenticated visitors are
// sent straight to their area.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if sess := h.sessions.Current(r.Context()); sess.IsAuthenticated() {
		http.Redirect(w, r, roleHome(sess.Role()), http.StatusSeeOther)
		return
	}
	renderPage(w, r, h.renderer, "login", render.TemplateData{
		Title: "Sign In - BookItNow",
		Data:  loginData{},
	})
}

// Login handles the login form submission. On failure the form is
// re-rendered inline with the server's message; on success the session is
// replaced and the user is redirected by role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteLogin, "Invalid form data")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		h.renderLoginError(w, r, email, "Email and password are required")
		return
	}

	resp, err := h.api.Login(r.Context(), email, password)
	if err != nil {
		slog.Debug("login failed", "email", email, "error", err)
		h.renderLoginError(w, r, email, api.ErrorMessage(err, "Login failed. Please check your credentials."))
		return
	}

	if err := h.sessions.Login(r.Context(), resp.Token, resp.User); err != nil {
		logAndInternalError(w, "session login error", "error", err)
		return
	}

	slog.Info("user logged in", "user_id", resp.User.ID, "role", resp.User.Role)
	http.Redirect(w, r, roleHome(resp.User.Role), http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, email, msg string) {
	renderPage(w, r, h.renderer, "login", render.TemplateData{
		Title: "Sign In - BookItNow",
		Error: msg,
		Data:  loginData{Email: email},
	})
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if sess := h.sessions.Current(r.Context()); sess.IsAuthenticated() {
		http.Redirect(w, r, roleHome(sess.Role()), http.StatusSeeOther)
		return
	}
	renderPage(w, r, h.renderer, "register", render.TemplateData{
		Title: "Create Account - BookItNow",
		Data:  registerData{Role: model.RoleUser},
	})
}

// Register handles the registration form submission. Accounts register as
// user or organizer; admin accounts are never self-service.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.renderer, RouteRegister, "Invalid form data")
		return
	}

	data := registerData{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Role:  r.FormValue("role"),
	}
	password := r.FormValue("password")

	if data.Role != model.RoleUser && data.Role != model.RoleOrganizer {
		data.Role = model.RoleUser
	}
	if data.Name == "" || data.Email == "" || password == "" {
		h.renderRegisterError(w, r, data, "All fields are required")
		return
	}

	resp, err := h.api.Register(r.Context(), data.Name, data.Email, password, data.Role)
	if err != nil {
		slog.Debug("registration failed", "email", data.Email, "error", err)
		h.renderRegisterError(w, r, data, api.ErrorMessage(err, "Registration failed. Please try again."))
		return
	}

	if err := h.sessions.Login(r.Context(), resp.Token, resp.User); err != nil {
		logAndInternalError(w, "session login error", "error", err)
		return
	}

	slog.Info("user registered", "user_id", resp.User.ID, "role", resp.User.Role)
	if resp.User.IsOrganizer() {
		http.Redirect(w, r, RouteOrganizer, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, data registerData, msg string) {
	renderPage(w, r, h.renderer, "register", render.TemplateData{
		Title: "Create Account - BookItNow",
		Error: msg,
		Data:  data,
	})
}

// Logout clears the session and returns to the landing page. Idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Current(r.Context())
	if err := h.sessions.Logout(r.Context()); err != nil {
		slog.Error("session logout error", "error", err)
	}
	if sess.IsAuthenticated() {
		slog.Info("user logged out", "user_id", sess.User.ID)
	}
	http.Redirect(w, r, RouteRoot, http.StatusSeeOther)
}

// roleHome maps a role to its home page: admin > organizer > plain user.
func roleHome(role string) string {
	switch role {
	case model.RoleAdmin:
		return RouteAdmin
	case model.RoleOrganizer:
		return RouteOrganizer
	default:
		return RouteDashboard
	}
}
