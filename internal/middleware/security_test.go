// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func applySecurityHeaders(cfg SecurityHeadersConfig) http.Header {
	handler := SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec.Header()
}

func TestSecurityHeaders_Development(t *testing.T) {
	h := applySecurityHeaders(DefaultSecurityHeadersConfig(true))

	if h.Get("Strict-Transport-Security") != "" {
		t.Error("expected no HSTS in development")
	}
	if h.Get("X-Frame-Options") != "SAMEORIGIN" {
		t.Errorf("expected SAMEORIGIN, got '%s'", h.Get("X-Frame-Options"))
	}
	if h.Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("expected nosniff, got '%s'", h.Get("X-Content-Type-Options"))
	}

	csp := h.Get("Content-Security-Policy")
	if !strings.Contains(csp, "default-src 'self'") {
		t.Errorf("expected default-src 'self' in CSP, got '%s'", csp)
	}
	// Event images come from the API origin.
	if !strings.Contains(csp, "img-src 'self' data: https:") {
		t.Errorf("expected img-src to allow https, got '%s'", csp)
	}
}

func TestSecurityHeaders_Production(t *testing.T) {
	h := applySecurityHeaders(DefaultSecurityHeadersConfig(false))

	hsts := h.Get("Strict-Transport-Security")
	if !strings.Contains(hsts, "max-age=31536000") {
		t.Errorf("expected one-year HSTS, got '%s'", hsts)
	}
	if !strings.Contains(hsts, "includeSubDomains") {
		t.Errorf("expected includeSubDomains, got '%s'", hsts)
	}
	if h.Get("Referrer-Policy") != "strict-origin-when-cross-origin" {
		t.Errorf("unexpected Referrer-Policy '%s'", h.Get("Referrer-Policy"))
	}
}

func TestBuildCSP_Deterministic(t *testing.T) {
	directives := map[string]string{
		"default-src": "'self'",
		"img-src":     "'self' https:",
	}
	first := buildCSP(directives)
	for i := 0; i < 10; i++ {
		if got := buildCSP(directives); got != first {
			t.Fatalf("CSP order not stable: %q vs %q", first, got)
		}
	}
	if !strings.HasPrefix(first, "default-src") {
		t.Errorf("expected default-src first, got '%s'", first)
	}
}
