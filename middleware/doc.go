// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

# Logging

WithLogging wraps a handler with start/completion logging via slog:

	mux.HandleFunc("POST /submissions", middleware.WithLogging(h.Submit))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ParseJSONBody(r, &req)

ErrorResponse produces a consistent {error, message} body.

# CORS

CORS allows cross-origin requests from the survey form and handles
OPTIONS preflight. Applied once around the whole mux in main.

# Client IP

GetClientIP extracts the client address, preferring X-Forwarded-For,
then X-Real-IP, then RemoteAddr (port stripped). The result feeds the
submission dedup hash, so proxy headers matter in production.
*/
package middleware
