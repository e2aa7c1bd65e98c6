package driver

import (
	"errors"
	"fmt"
)

// ErrRecordNotFoundForWhere is returned by Find when the supplied where
// clause matched zero rows. Single-record reads treat this as absence,
// not failure (spec §7).
var ErrRecordNotFoundForWhere = errors.New("driver: record not found for where clause")

// ErrRecordDoesNotExist is returned when an operation (typically a
// write) targets a record that is expected to exist and does not.
// Like ErrRecordNotFoundForWhere, this is absence, not failure.
var ErrRecordDoesNotExist = errors.New("driver: record does not exist")

// SqlError wraps a driver/execution failure with the query that
// produced it, for diagnostics. Use errors.Is against
// ErrRecordNotFoundForWhere / ErrRecordDoesNotExist to distinguish
// absence from genuine failure.
type SqlError struct {
	Query string
	Err   error
}

func (e *SqlError) Error() string {
	return fmt.Sprintf("driver: query failed: %s: %v", e.Query, e.Err)
}

func (e *SqlError) Unwrap() error { return e.Err }

// IsAbsence reports whether err represents record absence rather than a
// genuine driver failure.
func IsAbsence(err error) bool {
	return errors.Is(err, ErrRecordNotFoundForWhere) || errors.Is(err, ErrRecordDoesNotExist)
}
