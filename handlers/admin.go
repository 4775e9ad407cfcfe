// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/parent-pulse/auth"
	"github.com/danielhkuo/parent-pulse/cliparse"
	"github.com/danielhkuo/parent-pulse/middleware"
	"github.com/danielhkuo/parent-pulse/models"
	"github.com/danielhkuo/parent-pulse/survey"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(database *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: database, cfg: cfg}
}

// GetSummary handles GET /admin/summary
// Pure read-then-compute: safe to run concurrently with ingestion.
func (h *AdminHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Admin-Token")
	if err := auth.ValidateAdminToken(token, h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	rows, err := h.db.Query(`
		SELECT payload FROM submission WHERE survey_id = $1
	`, h.cfg.SurveyID)
	if err != nil {
		slog.Error("failed to query submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	payloads := []models.Payload{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			slog.Error("failed to scan submission", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		var payload models.Payload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			// A corrupt row is skipped, not fatal to the whole pass
			slog.Warn("skipping unreadable submission payload", "error", err)
			continue
		}
		payloads = append(payloads, payload)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summary := survey.Summarize(h.cfg.SurveyID, payloads)

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// Reset handles POST /admin/reset
// Irreversibly clears all submissions for all surveys.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Admin-Token")
	if err := auth.ValidateAdminToken(token, h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin token")
		return
	}

	res, err := h.db.Exec(`DELETE FROM submission`)
	if err != nil {
		slog.Error("failed to reset submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		deleted = 0
	}

	slog.Info("submissions reset", "deleted", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Deleted: deleted,
		Message: "All submissions deleted",
	})
}

// Health handles GET /health
// Reports storage reachability and echoes the configured survey id.
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage unreachable")
		return
	}

	var count int
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM submission WHERE survey_id = $1
	`, h.cfg.SurveyID).Scan(&count)
	if err != nil {
		slog.Error("failed to count submissions", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage unreachable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:      "ok",
		SurveyID:    h.cfg.SurveyID,
		Submissions: count,
	})
}
