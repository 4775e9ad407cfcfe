// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/parent-pulse/models"
	"github.com/danielhkuo/parent-pulse/survey"
	"github.com/danielhkuo/parent-pulse/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %q", resp.Status)
	}
	if resp.SurveyID != cfg.SurveyID {
		t.Errorf("Expected survey id %q, got %q", cfg.SurveyID, resp.SurveyID)
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "parent-pulse API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// Routes should be matched (400/401 are valid handler responses)
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/submissions"},
		{"GET", "/admin/summary"},
		{"POST", "/admin/reset"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},        // Only GET is defined
		{"GET", "/submissions"},    // Only POST is defined
		{"DELETE", "/admin/reset"}, // Only POST is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

// TestSubmitSummarizeResetFlow walks the full lifecycle through the mux:
// two clients submit, the admin summarizes, resets, and summarizes again.
func TestSubmitSummarizeResetFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	submissions := []struct {
		ip      string
		payload models.Payload
	}{
		{"203.0.113.1", models.Payload{"safety_child_safe": 4, "community_free": "Great year"}},
		{"203.0.113.2", models.Payload{"safety_child_safe": 2}},
	}
	for _, s := range submissions {
		req := testutil.MakeRequest("POST", "/submissions", s.payload, map[string]string{
			"X-Forwarded-For": s.ip,
		})
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	// Repeat submission from the first client conflicts
	req := testutil.MakeRequest("POST", "/submissions", submissions[0].payload, map[string]string{
		"X-Forwarded-For": "203.0.113.1",
	})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Admin summary
	req = testutil.MakeRequest("GET", "/admin/summary", nil, map[string]string{
		"X-Admin-Token": cfg.AdminToken,
	})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var summary survey.Summary
	testutil.AssertJSON(t, w, &summary)
	if summary.TotalSubmissions != 2 {
		t.Errorf("Expected 2 submissions, got %d", summary.TotalSubmissions)
	}
	if q := summary.Questions["safety_child_safe"]; q == nil || q.Responses != 2 || q.Sum != 6 {
		t.Errorf("Unexpected stats: %+v", q)
	}

	// Reset
	req = testutil.MakeRequest("POST", "/admin/reset", nil, map[string]string{
		"X-Admin-Token": cfg.AdminToken,
	})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Summary after reset is empty
	req = testutil.MakeRequest("GET", "/admin/summary", nil, map[string]string{
		"X-Admin-Token": cfg.AdminToken,
	})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	summary = survey.Summary{}
	testutil.AssertJSON(t, w, &summary)
	if summary.TotalSubmissions != 0 || len(summary.Questions) != 0 || len(summary.FreeText) != 0 {
		t.Errorf("Expected empty summary after reset, got %+v", summary)
	}
}
