// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookitnow/bookitnow-web/internal/model"
	"github.com/bookitnow/bookitnow-web/internal/session"
)

// requestWithSession builds a request carrying the given session, the way
// LoadSession would have left it.
func requestWithSession(sess session.Session) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := context.WithValue(req.Context(), ContextKeySession, sess)
	return req.WithContext(ctx)
}

func protectedProbe(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuard_RedirectsUnauthenticated(t *testing.T) {
	guard := NewGuard(DefaultPolicy())

	for _, prefix := range []string{"/dashboard", "/tickets", "/organizer", "/admin"} {
		t.Run(prefix, func(t *testing.T) {
			called := false
			handler := guard.Protect(prefix)(protectedProbe(&called))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithSession(session.Session{}))

			if called {
				t.Error("protected handler ran for unauthenticated visitor")
			}
			if rec.Code != http.StatusSeeOther {
				t.Errorf("expected 303, got %d", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != RouteLogin {
				t.Errorf("expected redirect to %s, got %s", RouteLogin, loc)
			}
		})
	}
}

func TestGuard_RoleEnforcement(t *testing.T) {
	guard := NewGuard(DefaultPolicy())

	tests := []struct {
		name    string
		prefix  string
		role    string
		allowed bool
	}{
		{"user on dashboard", "/dashboard", model.RoleUser, true},
		{"organizer on dashboard", "/dashboard", model.RoleOrganizer, true},
		{"admin on dashboard", "/dashboard", model.RoleAdmin, true},
		{"user on tickets", "/tickets", model.RoleUser, true},
		{"organizer on tickets", "/tickets", model.RoleOrganizer, true},
		{"admin on tickets", "/tickets", model.RoleAdmin, false},
		{"organizer on organizer", "/organizer", model.RoleOrganizer, true},
		{"user on organizer", "/organizer", model.RoleUser, false},
		{"admin on organizer", "/organizer", model.RoleAdmin, false},
		{"admin on admin", "/admin", model.RoleAdmin, true},
		{"user on admin", "/admin", model.RoleUser, false},
		{"organizer on admin", "/admin", model.RoleOrganizer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := guard.Protect(tt.prefix)(protectedProbe(&called))

			sess := session.Session{
				Token: "tok",
				User:  &model.User{ID: "u1", Role: tt.role},
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithSession(sess))

			if called != tt.allowed {
				t.Errorf("handler called=%v, want %v", called, tt.allowed)
			}
			if !tt.allowed {
				if rec.Code != http.StatusSeeOther {
					t.Errorf("expected 303, got %d", rec.Code)
				}
				if loc := rec.Header().Get("Location"); loc != RouteLogin {
					t.Errorf("expected redirect to %s, got %s", RouteLogin, loc)
				}
			}
		})
	}
}

func TestGuard_UnknownPrefixDeniesEveryone(t *testing.T) {
	guard := NewGuard(DefaultPolicy())

	called := false
	handler := guard.Protect("/unlisted")(protectedProbe(&called))

	sess := session.Session{Token: "tok", User: &model.User{ID: "u1", Role: model.RoleAdmin}}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession(sess))

	if called {
		t.Error("handler ran for unlisted prefix")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rec.Code)
	}
}

func TestLoadSession(t *testing.T) {
	sessions := session.NewMemory()

	var got session.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r)
	})
	handler := sessions.LoadAndSave(LoadSession(sessions)(inner))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got.IsAuthenticated() {
		t.Error("expected logged out session for fresh request")
	}
}

func TestGetSession_MissingContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := GetSession(req)
	if sess.IsAuthenticated() {
		t.Error("expected zero session when nothing was loaded")
	}
	if sess.Role() != "" {
		t.Errorf("expected empty role, got '%s'", sess.Role())
	}
}
