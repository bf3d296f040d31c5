package domain

import (
	"errors"
	"fmt"
)

// Recoverable business outcomes. These are ordinary results, not failures:
// callers surface them and let the user change their input.
var (
	ErrInsufficientBalance = errors.New("insufficient balance in the selected bucket")
	ErrIllegalTransition   = errors.New("entry is already voided")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrNotFound            = errors.New("record not found")
	ErrSubmissionInFlight  = errors.New("another submission is already in flight")
)

// ValidationError describes a malformed or incomplete draft. It is always
// raised before any store interaction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError wraps a failure from the backing store. Local state is left
// unchanged; the caller may retry.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStore reports whether err is (or wraps) a StoreError.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// InvariantViolation flags a modeling defect, such as an entry whose
// type/method combination the balance reducer does not recognize. It must
// never be silently defaulted into a balance.
type InvariantViolation struct {
	EntryID string
	Detail  string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation on entry %s: %s", e.EntryID, e.Detail)
}
