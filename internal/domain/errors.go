package domain

import (
	"errors"
	"fmt"
)

// Client-input failures. The HTTP boundary maps these to 400 responses
// with the exact messages clients have come to depend on.
var (
	// ErrMalformedPayload: the body parsed under neither accepted shape.
	ErrMalformedPayload = errors.New("Invalid request")

	// ErrInvalidDate: a date filter (or a stored timestamp) failed to
	// parse; the whole query fails rather than silently skipping rows.
	ErrInvalidDate = errors.New("invalid date")
)

// ValidationError reports a parsed payload whose required or
// constrained fields are missing or invalid.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// EnrichmentError reports a sentiment or lexical capability failure.
// It is an infrastructure error, kept distinct from client input
// errors so the boundary can answer 5xx instead of 400.
type EnrichmentError struct {
	Op  string // "sentiment" or "lexical"
	Err error
}

func (e *EnrichmentError) Error() string { return fmt.Sprintf("enrich %s: %v", e.Op, e.Err) }
func (e *EnrichmentError) Unwrap() error { return e.Err }
