// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

// Package session owns the client's only persistent state: the current
// bearer token and user identity. Everything else the app renders is a
// transient copy of API data.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/bookitnow/bookitnow-web/internal/model"
)

// Session keys. The token is an opaque bearer credential; the user is
// stored as JSON alongside it. Both are written together and cleared
// together, so token-present iff user-present holds.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Session is the current authenticated identity as restored from the
// session store. The zero value means logged out.
type Session struct {
	Token string
	User  *model.User
}

// IsAuthenticated returns true when a token is held.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// IsAdmin returns true when the session belongs to an admin.
func (s Session) IsAdmin() bool {
	return s.User.IsAdmin()
}

// IsOrganizer returns true when the session belongs to an organizer.
func (s Session) IsOrganizer() bool {
	return s.User.IsOrganizer()
}

// Role returns the session's role, or empty when logged out.
func (s Session) Role() string {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Manager wraps scs with the login/logout lifecycle. It is constructed in
// main and injected into every consumer; there is no ambient singleton.
type Manager struct {
	scs *scs.SessionManager
}

// New creates a Manager backed by the given SQLite database so sessions
// survive process restarts. Secure cookies outside development.
func New(db *sql.DB, isDev bool) *Manager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev

	return &Manager{scs: sm}
}

// NewMemory creates a Manager with the in-memory scs store, for tests.
func NewMemory() *Manager {
	return &Manager{scs: scs.New()}
}

// LoadAndSave is the scs middleware that restores the session before any
// handler runs and commits writes afterwards. Because restore happens
// here, handlers never observe a "not yet determined" session.
func (m *Manager) LoadAndSave(next http.Handler) http.Handler {
	return m.scs.LoadAndSave(next)
}

// Login replaces the session with the given credential and identity.
// The session id is renewed to prevent fixation, and the write is
// committed to the store by LoadAndSave before the response goes out.
// A second Login fully replaces the prior session, no merge.
func (m *Manager) Login(ctx context.Context, token string, user model.User) error {
	if err := m.scs.RenewToken(ctx); err != nil {
		return fmt.Errorf("renewing session token: %w", err)
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session user: %w", err)
	}
	m.scs.Put(ctx, keyToken, token)
	m.scs.Put(ctx, keyUser, string(userJSON))
	return nil
}

// Logout clears the credential and identity and destroys the session in
// the store. Calling it while already logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	if !m.scs.Exists(ctx, keyToken) {
		return nil
	}
	if err := m.scs.Destroy(ctx); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	return nil
}

// Current returns the restored session. If the stored user cannot be
// decoded the session is treated as logged out, preserving the invariant
// that token and user are present together.
func (m *Manager) Current(ctx context.Context) Session {
	token := m.scs.GetString(ctx, keyToken)
	if token == "" {
		return Session{}
	}
	var user model.User
	if err := json.Unmarshal([]byte(m.scs.GetString(ctx, keyUser)), &user); err != nil {
		return Session{}
	}
	return Session{Token: token, User: &user}
}

// PopFlash returns and clears the flash message and its type, if any.
func (m *Manager) PopFlash(ctx context.Context) (string, string) {
	flash := m.scs.PopString(ctx, "flash")
	if flash == "" {
		return "", ""
	}
	flashType := m.scs.PopString(ctx, "flash_type")
	if flashType == "" {
		flashType = "info"
	}
	return flash, flashType
}

// SetFlash stores a one-shot message shown on the next rendered page.
func (m *Manager) SetFlash(ctx context.Context, message, flashType string) {
	m.scs.Put(ctx, "flash", message)
	m.scs.Put(ctx, "flash_type", flashType)
}
