// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/parent-pulse/models"
)

// Question type constants
const (
	TypeScale = "scale"
	TypeFree  = "free"
)

// QuestionStats holds the aggregates for a single scale question.
type QuestionStats struct {
	Responses int         `json:"responses"`
	Sum       float64     `json:"sum"`
	Counts    map[int]int `json:"counts,omitempty"`
	Average   *float64    `json:"average,omitempty"`
	Type      string      `json:"type"`
}

// Summary is the derived aggregate over all submissions for one survey.
// It is built fresh per request and never persisted.
type Summary struct {
	SurveyID         string                         `json:"survey_id"`
	TotalSubmissions int                            `json:"total_submissions"`
	Questions        map[string]*QuestionStats      `json:"questions"`
	FreeText         map[string]map[string][]string `json:"free_text"`
	Labels           map[string]KeyLabel            `json:"labels"`
}

// Summarize folds all submission payloads for a survey into a Summary.
//
// Keys ending in the free-text marker collect trimmed non-empty text,
// bucketed by building label. Every other key is treated as a 1-5 scale
// question: the value is coerced to a number and accepted only if finite
// and within [1,5]; anything else is skipped silently so one bad field
// never corrupts the rest of the pass.
func Summarize(surveyID string, payloads []models.Payload) *Summary {
	s := &Summary{
		SurveyID:         surveyID,
		TotalSubmissions: len(payloads),
		Questions:        make(map[string]*QuestionStats),
		FreeText:         make(map[string]map[string][]string),
	}

	for _, payload := range payloads {
		for key, value := range payload {
			if strings.HasSuffix(key, FreeTextSuffix) {
				s.addFreeText(key, value)
				continue
			}
			s.addScale(key, value)
		}
	}

	// Averages are computed after the full scan; nil when a question
	// collected zero valid responses (never NaN, never zero).
	for _, q := range s.Questions {
		if q.Type == TypeScale && q.Responses > 0 {
			avg := q.Sum / float64(q.Responses)
			q.Average = &avg
		}
	}

	keys := make([]string, 0, len(s.Questions)+len(s.FreeText))
	for key := range s.Questions {
		keys = append(keys, key)
	}
	for key := range s.FreeText {
		keys = append(keys, key)
	}
	s.Labels = LabelKeys(keys)

	return s
}

func (s *Summary) addFreeText(key string, value any) {
	text, ok := value.(string)
	if !ok {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	bucket := BuildingLabel(ParseKey(key).Building)
	if s.FreeText[key] == nil {
		s.FreeText[key] = make(map[string][]string)
	}
	s.FreeText[key][bucket] = append(s.FreeText[key][bucket], text)

	q := s.Questions[key]
	if q == nil {
		q = &QuestionStats{Type: TypeFree}
		s.Questions[key] = q
	}
	q.Responses++
}

func (s *Summary) addScale(key string, value any) {
	v, ok := scaleValue(value)
	if !ok {
		return
	}

	q := s.Questions[key]
	if q == nil {
		q = &QuestionStats{Type: TypeScale, Counts: make(map[int]int)}
		s.Questions[key] = q
	}
	q.Responses++
	q.Sum += v
	q.Counts[int(v)]++ // truncation; 5.0 lands in bucket 5
}

// scaleValue coerces a submitted scalar to a scale score. Accepts JSON
// numbers and numeric strings; the result must be finite and in [1,5].
func scaleValue(value any) (float64, bool) {
	var v float64
	switch t := value.(type) {
	case float64:
		v = t
	case int:
		v = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		v = parsed
	default:
		// Booleans and anything exotic are not scale answers
		return 0, false
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 || v > 5 {
		return 0, false
	}
	return v, true
}
