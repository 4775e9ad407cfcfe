// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/parent-pulse/auth"
	"github.com/danielhkuo/parent-pulse/cliparse"
	"github.com/danielhkuo/parent-pulse/db"
	"github.com/danielhkuo/parent-pulse/forward"
	"github.com/danielhkuo/parent-pulse/middleware"
	"github.com/danielhkuo/parent-pulse/models"
)

type SubmitHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	fwd *forward.Forwarder
}

func NewSubmitHandler(database *sql.DB, cfg cliparse.Config, fwd *forward.Forwarder) *SubmitHandler {
	return &SubmitHandler{db: database, cfg: cfg, fwd: fwd}
}

// Submit handles POST /submissions
// One submission per client: the unique constraint on (survey_id,
// client_hash) is the source of truth, so there is no check-then-act race.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload models.Payload
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validatePayload(payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Hash the client address for dedup. Trusted shared-IP locations
	// (school kiosks) get a unique per-request hash instead.
	clientIP := middleware.GetClientIP(r)
	var clientHash string
	if slices.Contains(h.cfg.TrustedIPs, clientIP) {
		clientHash = auth.KioskHash()
	} else {
		clientHash = auth.HashClientIP(clientIP, h.cfg.IPHashSalt)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	submissionID := uuid.NewString()
	userAgent := r.UserAgent()

	_, err = h.db.Exec(`
		INSERT INTO submission (id, survey_id, client_hash, submitted_at, user_agent, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, submissionID, h.cfg.SurveyID, clientHash, time.Now(), userAgent, string(payloadJSON))

	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusForbidden, "A response from this address has already been recorded")
			return
		}
		slog.Error("failed to insert submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	slog.Info("submission recorded", "submission_id", submissionID, "survey_id", h.cfg.SurveyID)

	// Fire-and-forget: a webhook failure never reaches the submitter
	go h.fwd.Forward(h.cfg.SurveyID, submissionID, payload)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		SubmissionID: submissionID,
		Message:      "Thank you for your response",
	})
}

// validatePayload rejects malformed submission shapes before persistence.
// The payload must be a flat object of scalar values.
func validatePayload(payload models.Payload) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload cannot be empty")
	}
	if len(payload) > models.MaxPayloadKeys {
		return fmt.Errorf("payload exceeds %d keys", models.MaxPayloadKeys)
	}

	for key, value := range payload {
		if len(key) > models.MaxKeyLength {
			return fmt.Errorf("key exceeds %d characters", models.MaxKeyLength)
		}

		switch v := value.(type) {
		case string:
			if len(v) > models.MaxValueLength {
				return fmt.Errorf("value for %q exceeds %d characters", key, models.MaxValueLength)
			}
		case float64, bool:
			// Scalars are fine
		default:
			// Nested objects, arrays, null
			return fmt.Errorf("value for %q must be a scalar", key)
		}
	}

	return nil
}
