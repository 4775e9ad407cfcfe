// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "strings"

// FreeTextSuffix marks an open-ended question key.
const FreeTextSuffix = "_free"

// Building suffix constants
const (
	BuildingElem   = "elem"
	BuildingMiddle = "ms"
	BuildingHigh   = "hs"
)

// QuestionKey is the parsed form of a survey question key such as
// "safety_child_safe_elem" or "community_free". The category is the prefix
// before the first underscore; an optional building suffix (elem/ms/hs)
// and a trailing free-text marker are stripped off the end.
type QuestionKey struct {
	Category   string
	QuestionID string
	Building   string // empty when not building-specific
	IsFreeText bool
}

// ParseKey splits a raw question key into its category, base question id,
// building suffix, and free-text marker. It never fails: unknown shapes
// just land in the fallback category/building at label time.
func ParseKey(key string) QuestionKey {
	var qk QuestionKey

	rest := key
	if strings.HasSuffix(rest, FreeTextSuffix) {
		qk.IsFreeText = true
		rest = strings.TrimSuffix(rest, FreeTextSuffix)
	}

	for _, b := range []string{BuildingElem, BuildingMiddle, BuildingHigh} {
		if strings.HasSuffix(rest, "_"+b) {
			qk.Building = b
			rest = strings.TrimSuffix(rest, "_"+b)
			break
		}
	}

	if i := strings.Index(rest, "_"); i >= 0 {
		qk.Category = rest[:i]
		qk.QuestionID = rest[i+1:]
	} else {
		qk.Category = rest
	}

	return qk
}

// categoryLabels maps key prefixes to display labels. Unknown prefixes
// fall back to "Other".
var categoryLabels = map[string]string{
	"safety":        "Safety & Well-Being",
	"academics":     "Academics & Instruction",
	"communication": "Communication",
	"community":     "Community & Belonging",
	"facilities":    "Facilities & Operations",
	"staff":         "Staff & Leadership",
}

// buildingLabels maps building suffixes to display labels. Absent or
// unknown suffixes fall back to the catch-all bucket.
var buildingLabels = map[string]string{
	BuildingElem:   "Elementary",
	BuildingMiddle: "Middle School",
	BuildingHigh:   "High School",
}

// BuildingAll is the catch-all bucket for keys with no building suffix.
const BuildingAll = "All / N/A"

// CategoryLabel returns the display label for a category prefix.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return "Other"
}

// BuildingLabel returns the display label for a building suffix.
func BuildingLabel(building string) string {
	if label, ok := buildingLabels[building]; ok {
		return label
	}
	return BuildingAll
}

// KeyLabel pairs a raw question key with its display grouping. Purely for
// presentation: the aggregation itself never depends on labels.
type KeyLabel struct {
	Key      string `json:"key"`
	Category string `json:"category"`
	Building string `json:"building"`
}

// LabelKeys maps every key to its category and building display labels.
func LabelKeys(keys []string) map[string]KeyLabel {
	labels := make(map[string]KeyLabel, len(keys))
	for _, key := range keys {
		qk := ParseKey(key)
		labels[key] = KeyLabel{
			Key:      key,
			Category: CategoryLabel(qk.Category),
			Building: BuildingLabel(qk.Building),
		}
	}
	return labels
}
