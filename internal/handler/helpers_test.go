// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookitnow/bookitnow-web/internal/middleware"
	"github.com/bookitnow/bookitnow-web/internal/model"
	"github.com/bookitnow/bookitnow-web/internal/render"
	"github.com/bookitnow/bookitnow-web/internal/session"
	"github.com/bookitnow/bookitnow-web/web"
)

// testEnv wires a handler under test with an in-memory session manager
// and the real templates, the same way main does.
type testEnv struct {
	sessions *session.Manager
	renderer *render.Renderer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	sessions := session.NewMemory()
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		Sessions:    sessions,
		IsDev:       true,
	})
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return &testEnv{sessions: sessions, renderer: renderer}
}

// serve runs the request through the session middleware chain and the
// given handler, optionally logging in a user first so the handler sees
// an authenticated session.
func (e *testEnv) serve(t *testing.T, h http.Handler, req *http.Request, user *model.User) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	chain := e.sessions.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user != nil {
			if err := e.sessions.Login(r.Context(), "tok-"+user.ID, *user); err != nil {
				t.Fatalf("session login: %v", err)
			}
		}
		middleware.LoadSession(e.sessions)(h).ServeHTTP(w, r)
	}))
	chain.ServeHTTP(rec, req)
	return rec
}

func jsonDecode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func testUser() *model.User {
	return &model.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: model.RoleUser}
}

func testOrganizer() *model.User {
	return &model.User{ID: "o1", Name: "Olga", Email: "olga@example.com", Role: model.RoleOrganizer}
}

func testAdmin() *model.User {
	return &model.User{ID: "a1", Name: "Ada", Email: "ada@example.com", Role: model.RoleAdmin}
}
