package models

import "time"

// Payload size limits enforced before persistence
const (
	MaxPayloadKeys = 1000
	MaxKeyLength   = 200
	MaxValueLength = 2000
)

// Request types

// Payload is one flat survey submission: question key -> scalar answer.
type Payload map[string]any

// Response types

type SubmitResponse struct {
	SubmissionID string `json:"submission_id"`
	Message      string `json:"message"`
}

type ResetResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	SurveyID    string `json:"survey_id"`
	Submissions int    `json:"submissions"`
}

// Domain types

type Submission struct {
	ID          string    `json:"id"`
	SurveyID    string    `json:"survey_id"`
	ClientHash  string    `json:"-"` // Never expose in JSON
	SubmittedAt time.Time `json:"submitted_at"`
	UserAgent   *string   `json:"-"` // Never expose in JSON
	Payload     Payload   `json:"payload"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
