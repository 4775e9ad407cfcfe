// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Parent Pulse API server.

Parent Pulse collects parent survey responses (1-5 scale questions plus
free-text fields) via a JSON web form, enforces one submission per client
address, and exposes an admin API that summarizes results by category and
building.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ADMIN_TOKEN=... IP_HASH_SALT=... go run main.go

Or with flags:

	go run main.go -p 3410 -t sqlite -d survey.db -admin-token ... -ip-salt ...

A .env file in the working directory is loaded automatically if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string (postgres URL or sqlite file path)
  - ADMIN_TOKEN (-admin-token): Shared secret for the admin API
  - IP_HASH_SALT (-ip-salt): Secret for client address hashing

Optional settings:

  - PORT (-p): Server port (default: 3410)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SURVEY_ID (-survey): Survey identifier (default: parent-survey)
  - TRUSTED_IPS (-trusted-ips): Comma-separated IPs that bypass dedup
  - WEBHOOK_URL (-webhook): Forward accepted submissions here

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (submissions, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and payload limits
  - auth: Client hashing and admin token validation
  - survey: Question-key parsing and summary aggregation
  - forward: Fire-and-forget webhook forwarding
  - db: Schema creation and driver selection
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
