package common

import (
	"errors"
	"fmt"
)

var (
	// Directory outcomes. Callers should use errors.Is to match these values.
	ErrorNotFound         = errors.New("not found")
	ErrorAlreadyExists    = errors.New("already exists")
	ErrorInvalidInput     = errors.New("invalid input")
	ErrorStoreUnavailable = errors.New("store unavailable")

	// Unclassified faults.
	ErrorInternal = errors.New("internal error")
)

// ValidationError reports which input field broke which constraint.
// It matches ErrorInvalidInput under errors.Is.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: field %q violates %q", e.Field, e.Rule)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrorInvalidInput
}
