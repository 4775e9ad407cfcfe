// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and driver selection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL is driver-neutral: no NOW() defaults, no JSONB, so the same schema
runs on postgres and sqlite.

# Tables

The schema is a single table:

  - submission: One recorded survey response per client hash

The unique constraint on (survey_id, client_hash) enforces the
one-submission-per-client rule at the storage layer, so ingestion never
needs a check-then-act query.

# Drivers

Open selects the driver by configured type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, also used by the test suite)

IsUniqueViolation classifies duplicate-key errors from either driver so
handlers can map them to a conflict response instead of a server error.
*/
package db
