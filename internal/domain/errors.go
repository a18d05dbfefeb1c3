package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation is the sentinel wrapped by every rejected submission.
var ErrValidation = errors.New("validation error")

// MsgInvalidInput is the single message attached to every rejected field.
// The rule engine only reports pass/fail, so there is no finer detail to give.
const MsgInvalidInput = "invalid input"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for the names of the rejected fields.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError marking each named field as
// invalid input.
func NewValidationError(fields ...string) *ValidationError {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f] = MsgInvalidInput
	}
	return &ValidationError{Fields: m}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
