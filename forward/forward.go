// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/parent-pulse/models"
)

// Forwarder POSTs accepted submissions to an external webhook. A failure
// here is logged and swallowed; it must never affect the ingestion
// response the submitter already got.
type Forwarder struct {
	url    string
	client *http.Client
}

// New returns a Forwarder, or nil when no webhook URL is configured.
// A nil Forwarder is safe to call.
func New(url string) *Forwarder {
	if url == "" {
		return nil
	}
	return &Forwarder{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Forward sends one accepted submission to the webhook. Intended to run
// in its own goroutine after the ingestion response is written.
func (f *Forwarder) Forward(surveyID, submissionID string, payload models.Payload) {
	if f == nil {
		return
	}

	if err := f.send(surveyID, submissionID, payload); err != nil {
		slog.Warn("webhook forward failed",
			"submission_id", submissionID,
			"error", err,
		)
		return
	}

	slog.Info("submission forwarded", "submission_id", submissionID)
}

func (f *Forwarder) send(surveyID, submissionID string, payload models.Payload) error {
	body, err := json.Marshal(map[string]any{
		"survey_id":     surveyID,
		"submission_id": submissionID,
		"payload":       payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode webhook body: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
