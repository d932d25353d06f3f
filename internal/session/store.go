// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package session

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// OpenStore opens (creating if needed) the SQLite database that backs the
// session store. The schema is the one sqlite3store expects.
func OpenStore(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_expiry ON sessions(expiry);
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating sessions table: %w", err)
	}

	return db, nil
}
