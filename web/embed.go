// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package web

import "embed"

//go:embed all:templates
var Templates embed.FS

//go:embed all:static
var Static embed.FS
