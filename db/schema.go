// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DDL kept to the dialect subset shared by SQLite and PostgreSQL.
const schema = `
-- Session assignments (experimental tier; the protected tier lives in
-- ink comments on the catalog, never here)
CREATE TABLE IF NOT EXISTS session_assignment (
    year INTEGER NOT NULL,
    date TEXT NOT NULL,
    ink_index INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (year, date)
);

CREATE INDEX IF NOT EXISTS idx_session_assignment_year ON session_assignment(year);

-- Month themes (session tier)
CREATE TABLE IF NOT EXISTS month_theme (
    year INTEGER NOT NULL,
    month INTEGER NOT NULL,
    theme TEXT NOT NULL,
    description TEXT,
    PRIMARY KEY (year, month)
);

-- Chat transcript
CREATE TABLE IF NOT EXISTS chat_message (
    id TEXT PRIMARY KEY,
    role TEXT NOT NULL CHECK (role IN ('user', 'assistant')),
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_chat_message_created_at ON chat_message(created_at);
`
