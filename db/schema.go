// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL avoids driver-specific defaults so it runs unchanged on both
// postgres and sqlite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Submissions
CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    survey_id TEXT NOT NULL,
    client_hash TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL,
    user_agent TEXT,
    payload TEXT NOT NULL,
    UNIQUE (survey_id, client_hash)
);

CREATE INDEX IF NOT EXISTS idx_submission_survey_id ON submission(survey_id);
`

// Open opens a database handle for the configured driver type.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		return sql.Open("postgres", url)
	case "sqlite":
		return sql.Open("sqlite", url)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbType)
	}
}

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. The constraint on (survey_id, client_hash)
// is the source of truth for duplicate submissions.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
