package service

import (
	"errors"
	"fmt"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/store"
)

// Workflow error taxonomy. Every error returned by a service matches exactly
// one of these with [errors.Is], or is an unexpected infrastructure failure.
var (
	// ErrNotFound is returned when a referenced case, agreement, user,
	// document or child record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when an operation is attempted against a
	// record in the wrong status or of the wrong type, or when a
	// conditionally required field is missing.
	ErrInvalidState = errors.New("invalid state")

	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("conflict")

	// ErrPermissionDenied is returned when the principal lacks the role or
	// approver level an operation requires.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIdentityMissing is returned when no acting principal is supplied.
	ErrIdentityMissing = errors.New("identity missing")

	// ErrInvalidInput is returned when a request is structurally invalid.
	ErrInvalidInput = errors.New("invalid input")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

var taxonomy = []error{
	ErrNotFound, ErrInvalidState, ErrConflict, ErrPermissionDenied, ErrIdentityMissing, ErrInvalidInput,
}

// translate maps store failures onto the workflow taxonomy. Errors already
// classified are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range taxonomy {
		if errors.Is(err, known) {
			return err
		}
	}

	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrReferenceNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, store.ErrConstraintViolated), errors.Is(err, store.ErrEmptyUpload):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func invalidState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
