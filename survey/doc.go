// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey implements the aggregation core: question-key parsing and
the summary fold over stored submissions.

# Question Keys

Survey payloads are flat maps of question key to scalar answer. A key
encodes its grouping structurally:

	safety_child_safe          category "safety", question "child_safe"
	academics_rigor_elem       building suffix "elem"
	community_free             free-text marker
	staff_support_hs_free      building-specific free text

ParseKey splits a key into a typed record:

	qk := survey.ParseKey("safety_child_safe_elem")
	// {Category: "safety", QuestionID: "child_safe", Building: "elem"}

# Summarization

Summarize folds every payload into per-question aggregates:

	summary := survey.Summarize(surveyID, payloads)

Scale questions accept finite numeric values in [1,5] and track response
count, sum, a per-score histogram, and (after the scan) the average.
Out-of-range or non-numeric values are skipped silently so one bad field
never corrupts the rest of the pass. Free-text questions collect trimmed
non-empty strings bucketed by building.

The pass is pure read-then-compute: it builds a fresh Summary per call and
shares no state, so concurrent summaries are safe.

# Labels

Display grouping is a separate pass over the result keys. Category
prefixes and building suffixes map to human labels through fixed tables;
unknown prefixes fall back to "Other" and absent buildings to "All / N/A".
Labels are presentation only and never influence the aggregates.
*/
package survey
