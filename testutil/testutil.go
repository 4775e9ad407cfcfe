// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/parent-pulse/cliparse"
	"github.com/danielhkuo/parent-pulse/db"
	"github.com/danielhkuo/parent-pulse/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Max one open connection so every query sees the same memory DB.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	if err := db.CreateSchema(database); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return database
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3410,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		SurveyID:     "test-survey",
		AdminToken:   "test-admin-token",
		IPHashSalt:   "test-ip-salt",
	}
}

// InsertTestSubmission stores a submission directly and returns its ID
func InsertTestSubmission(t *testing.T, database *sql.DB, surveyID, clientHash string, payload models.Payload) string {
	t.Helper()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to encode test payload: %v", err)
	}

	id := uuid.NewString()
	_, err = database.Exec(`
		INSERT INTO submission (id, survey_id, client_hash, submitted_at, user_agent, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, surveyID, clientHash, time.Now(), "testutil", string(payloadJSON))
	if err != nil {
		t.Fatalf("Failed to insert test submission: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
