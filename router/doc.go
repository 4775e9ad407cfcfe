// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

NewRouter wires handlers to Go 1.22+ method+path patterns:

	GET  /health         → health check (storage ping, survey id echo)
	POST /submissions    → survey submission ingestion
	GET  /admin/summary  → aggregated results (X-Admin-Token)
	POST /admin/reset    → destructive table-wide reset (X-Admin-Token)
	GET  /               → API identifier

# Construction

	mux := router.NewRouter(db, cfg)

NewRouter builds the webhook Forwarder from config and injects it into the
submission handler. Request logging wraps every route except /health.
*/
package router
