package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrReportNotFound = fmt.Errorf("%w: report", ErrNotFound)
	ErrUploadNotFound = fmt.Errorf("%w: upload", ErrNotFound)

	// Upload validation errors
	ErrUploadTooLarge    = errors.New("upload exceeds size limit")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyUpload       = errors.New("upload contains no data")

	// Collaborator errors
	ErrAnalystUnavailable = errors.New("AI analyst not configured")
	ErrStorageUnavailable = errors.New("report storage not configured")
)

// NewNotFoundError creates a not-found error with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// NewValidationError creates a validation error with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// IsNotFoundError checks if an error is a not-found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
