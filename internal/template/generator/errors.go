package generator

import (
	"errors"
	"fmt"
)

// GeneratorErrorType categorizes generator errors.
type GeneratorErrorType int

const (
	// GeneratorIOFailed indicates a filesystem operation failed: a missing
	// source template, an unwritable destination or a permission error.
	GeneratorIOFailed GeneratorErrorType = iota
	// GeneratorPathError indicates an invalid or unsafe path was encountered.
	GeneratorPathError
	// GeneratorCanceled indicates the copy was interrupted by context cancellation.
	GeneratorCanceled
)

// GeneratorError represents generator-specific errors.
type GeneratorError struct {
	// Type categorizes the error.
	Type GeneratorErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// newGeneratorError creates a new GeneratorError.
func newGeneratorError(typ GeneratorErrorType, message, file string, cause error) *GeneratorError {
	return &GeneratorError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}

// IsIOError reports whether err wraps a GeneratorError of type GeneratorIOFailed.
func IsIOError(err error) bool {
	var genErr *GeneratorError
	return errors.As(err, &genErr) && genErr.Type == GeneratorIOFailed
}
