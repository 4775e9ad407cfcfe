// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - Payload: one flat submission, question key → scalar answer

# Response Types

  - SubmitResponse: submission_id, message
  - ResetResponse: deleted, message
  - HealthResponse: status, survey_id, submissions
  - ErrorResponse: error, message

# Domain Types

  - Submission: stored response with client hash and payload

ClientHash and UserAgent never serialize to JSON.

# Constants

Payload limits enforced before persistence:

	MaxPayloadKeys = 1000
	MaxKeyLength   = 200
	MaxValueLength = 2000
*/
package models
