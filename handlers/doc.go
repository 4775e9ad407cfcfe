// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Parent Pulse API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SubmitHandler: Survey submission ingestion with per-client dedup
  - AdminHandler: Summary, reset, and health

Handlers are created via constructor functions that accept *sql.DB and
Config (SubmitHandler also takes the webhook Forwarder):

	submitHandler := handlers.NewSubmitHandler(db, cfg, fwd)
	adminHandler := handlers.NewAdminHandler(db, cfg)

# Submission Flow

	POST /submissions → Submit

The body is one flat JSON object of question key → scalar answer. The
payload is validated (key count, key length, scalar values, value length)
before anything touches storage. The client address is hashed with the
configured salt; trusted kiosk addresses get a unique per-request hash
instead. A unique-constraint violation on insert maps to 403 (already
submitted), never a 500. Accepted submissions are optionally forwarded to
a webhook in a goroutine; forwarding failures are logged and swallowed.

# Admin Flow

	GET  /admin/summary → GetSummary
	POST /admin/reset   → Reset
	GET  /health        → Health

Admin operations require the X-Admin-Token header. GetSummary reads all
stored payloads for the configured survey and folds them through
survey.Summarize. Reset irreversibly clears the submission table.
*/
package handlers
