// Package batch collects per-record outcomes for a generator run.
//
// Every record is attempted; failures are recorded and reported at the end
// rather than aborting the batch. Only whole-run preconditions (missing
// input table, unusable output directory) are fatal up front.
package batch

import (
	"errors"
	"fmt"
)

// Kind classifies a per-record failure.
type Kind int

const (
	// KindValidation covers malformed or incomplete input rows.
	KindValidation Kind = iota
	// KindResource covers unreadable sources and unwritable destinations.
	KindResource
	// KindGeometry covers crop rectangles that are inverted or out of bounds.
	KindGeometry
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindResource:
		return "resource"
	case KindGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// Error is a per-record failure carrying the record identity and the cause.
type Error struct {
	Kind Kind
	ID   string
	Err  error
}

func (e *Error) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error for %q: %v", e.Kind, e.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a record Error from a format string.
func Errorf(kind Kind, id, format string, args ...any) *Error {
	return &Error{Kind: kind, ID: id, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether err is a batch Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == kind
}

// Summary accumulates the outcome of one batch run.
type Summary struct {
	OK       int
	Skipped  int
	Failures []*Error
}

// Success records one successfully processed record.
func (s *Summary) Success() {
	s.OK++
}

// Skip records one record that was intentionally not processed.
func (s *Summary) Skip() {
	s.Skipped++
}

// Fail records one failed record.
func (s *Summary) Fail(err *Error) {
	s.Failures = append(s.Failures, err)
}

// Failed returns the number of failed records.
func (s *Summary) Failed() int {
	return len(s.Failures)
}

// Err converts the summary into the command result: nil on full success,
// otherwise an error so the process exits non-zero for scripted use.
func (s *Summary) Err() error {
	if len(s.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d records failed", len(s.Failures), s.OK+s.Skipped+len(s.Failures))
}
