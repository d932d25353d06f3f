// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package session

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bookitnow/bookitnow-web/internal/model"
)

// withSession runs fn inside a request wrapped by LoadAndSave, returning
// the recorded response so cookie behavior can be asserted too.
func withSession(t *testing.T, m *Manager, cookies []*http.Cookie, fn func(r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	m.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(r)
	})).ServeHTTP(rec, req)
	return rec
}

func TestManager_LoginCurrentLogout(t *testing.T) {
	m := NewMemory()
	user := model.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: model.RoleOrganizer}

	withSession(t, m, nil, func(r *http.Request) {
		ctx := r.Context()

		if got := m.Current(ctx); got.IsAuthenticated() {
			t.Error("expected logged out session initially")
		}

		if err := m.Login(ctx, "tok123", user); err != nil {
			t.Fatalf("Login: %v", err)
		}

		sess := m.Current(ctx)
		if !sess.IsAuthenticated() {
			t.Fatal("expected authenticated session after login")
		}
		if sess.Token != "tok123" {
			t.Errorf("expected token 'tok123', got '%s'", sess.Token)
		}
		if sess.User == nil || sess.User.Name != "Alice" {
			t.Errorf("expected user Alice, got %+v", sess.User)
		}
		if !sess.IsOrganizer() || sess.IsAdmin() {
			t.Errorf("expected organizer session, got role '%s'", sess.Role())
		}

		if err := m.Logout(ctx); err != nil {
			t.Fatalf("Logout: %v", err)
		}
		if got := m.Current(ctx); got.IsAuthenticated() {
			t.Error("expected logged out session after logout")
		}
	})
}

func TestManager_LoginReplacesSession(t *testing.T) {
	m := NewMemory()

	withSession(t, m, nil, func(r *http.Request) {
		ctx := r.Context()

		if err := m.Login(ctx, "tok1", model.User{ID: "u1", Role: model.RoleUser}); err != nil {
			t.Fatalf("first Login: %v", err)
		}
		if err := m.Login(ctx, "tok2", model.User{ID: "u2", Role: model.RoleAdmin}); err != nil {
			t.Fatalf("second Login: %v", err)
		}

		sess := m.Current(ctx)
		if sess.Token != "tok2" {
			t.Errorf("expected token 'tok2', got '%s'", sess.Token)
		}
		if sess.User.ID != "u2" || !sess.IsAdmin() {
			t.Errorf("expected admin u2, got %+v", sess.User)
		}
	})
}

func TestManager_LogoutIdempotent(t *testing.T) {
	m := NewMemory()

	withSession(t, m, nil, func(r *http.Request) {
		ctx := r.Context()
		if err := m.Logout(ctx); err != nil {
			t.Fatalf("logout while logged out: %v", err)
		}
		if err := m.Logout(ctx); err != nil {
			t.Fatalf("second logout: %v", err)
		}
	})
}

func TestManager_Flash(t *testing.T) {
	m := NewMemory()

	withSession(t, m, nil, func(r *http.Request) {
		ctx := r.Context()

		if msg, _ := m.PopFlash(ctx); msg != "" {
			t.Errorf("expected no flash, got '%s'", msg)
		}

		m.SetFlash(ctx, "Event submitted for approval", "success")

		msg, flashType := m.PopFlash(ctx)
		if msg != "Event submitted for approval" || flashType != "success" {
			t.Errorf("got flash (%q, %q)", msg, flashType)
		}

		// One-shot: a second pop is empty.
		if msg, _ := m.PopFlash(ctx); msg != "" {
			t.Errorf("expected flash cleared, got '%s'", msg)
		}
	})
}

func TestManager_SQLitePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	db, err := OpenStore(dbPath)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer func() { _ = db.Close() }()

	m := New(db, true)
	user := model.User{ID: "u1", Name: "Alice", Role: model.RoleUser}

	rec := withSession(t, m, nil, func(r *http.Request) {
		if err := m.Login(r.Context(), "tok123", user); err != nil {
			t.Fatalf("Login: %v", err)
		}
	})

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	// A second request with the cookie restores the session from SQLite.
	withSession(t, m, cookies, func(r *http.Request) {
		sess := m.Current(r.Context())
		if !sess.IsAuthenticated() {
			t.Fatal("expected session restored from store")
		}
		if sess.Token != "tok123" || sess.User.Name != "Alice" {
			t.Errorf("restored session = %+v", sess)
		}
	})
}

func TestManager_CookieFlags(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sessions.db")
	db, err := OpenStore(dbPath)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer func() { _ = db.Close() }()

	m := New(db, false) // production

	rec := withSession(t, m, nil, func(r *http.Request) {
		if err := m.Login(r.Context(), "tok", model.User{ID: "u1", Role: model.RoleUser}); err != nil {
			t.Fatalf("Login: %v", err)
		}
	})

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}
	c := cookies[0]
	if !c.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if !c.Secure {
		t.Error("expected Secure cookie in production")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite=Lax, got %v", c.SameSite)
	}
}
