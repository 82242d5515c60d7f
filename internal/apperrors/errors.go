package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure that callers cannot recover from.
var ErrInternal = errors.New("internal error")

// NewValidationError wraps ErrValidation with a human-readable reason.
func NewValidationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}
