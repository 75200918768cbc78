package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by every domain service. Callers classify failures
// with errors.Is against these sentinels; the detail string travels in the
// wrapping error.
var (
	// ErrReferenceNotFound means a referenced foreign entity does not exist
	// (e.g. a student pointing at an unknown course).
	ErrReferenceNotFound = errors.New("referenced entity not found")

	// ErrConstraintViolation means a business rule blocks the operation
	// (e.g. deleting a course that still has enrolled students).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorageFailure means the underlying store failed; the wrapped
	// message carries the opaque reason.
	ErrStorageFailure = errors.New("storage failure")

	// ErrDataIntegrity means an aggregation found persisted data in an
	// inconsistent state (e.g. an avatar whose student no longer exists).
	ErrDataIntegrity = errors.New("data integrity violation")
)

// NewReferenceNotFound returns an ErrReferenceNotFound with a detail message.
func NewReferenceNotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrReferenceNotFound, fmt.Sprintf(format, args...))
}

// NewConstraintViolation returns an ErrConstraintViolation with a detail message.
func NewConstraintViolation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConstraintViolation, fmt.Sprintf(format, args...))
}

// NewStorageFailure wraps a store error into an ErrStorageFailure, keeping
// the original error in the chain.
func NewStorageFailure(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageFailure, op, cause)
}

// NewDataIntegrity returns an ErrDataIntegrity with a detail message.
func NewDataIntegrity(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDataIntegrity, fmt.Sprintf(format, args...))
}

// Kind returns the sentinel matched by err, or nil when err belongs to none
// of the service error kinds.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrReferenceNotFound):
		return ErrReferenceNotFound
	case errors.Is(err, ErrConstraintViolation):
		return ErrConstraintViolation
	case errors.Is(err, ErrDataIntegrity):
		return ErrDataIntegrity
	case errors.Is(err, ErrStorageFailure):
		return ErrStorageFailure
	default:
		return nil
	}
}
