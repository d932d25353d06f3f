// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startTime: time.Now()}
}

// Health reports process health and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}
