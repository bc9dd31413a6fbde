// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The DDL sticks to the dialect subset shared by SQLite and
PostgreSQL, so the same schema works under both drivers.

# Tables

  - session_assignment: the experimental assignment tier, keyed by
    (year, date). The protected tier is derived from swatch pins in
    ink comments and is never stored here.
  - month_theme: session-tier month themes
  - chat_message: chat assistant transcript

# Indexes

  - session_assignment.year
  - chat_message.created_at
*/
package db
