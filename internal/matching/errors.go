package matching

import "fmt"

// ValidationError reports a malformed or out-of-range input field.
// It is a caller fault and maps to a 400 at the HTTP boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ScoringError reports a feature the active weighting table depends on
// that is absent from the normalized input. This indicates a defect in
// the caller or the deployed tables, not bad user input.
type ScoringError struct {
	Feature string
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("scoring: required feature %q is missing", e.Feature)
}

// AggregationError reports a weight configuration that violates the
// sum-to-one invariant. It is raised at engine construction so a
// misconfigured service never accepts requests.
type AggregationError struct {
	Detail string
}

func (e *AggregationError) Error() string {
	return "aggregation: " + e.Detail
}
