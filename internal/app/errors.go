package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates invalid options or an unusable project/extras directory.
	ValidationFailed AppErrorType = iota
	// DependencyFailed indicates registering packages in package.json failed.
	DependencyFailed
	// CopyFailed indicates copying a template file failed.
	CopyFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewDependencyError creates a dependency registration error.
func NewDependencyError(message string, cause error) *AppError {
	return NewAppError(DependencyFailed, message, cause)
}

// NewCopyError creates a copy error.
func NewCopyError(message string, cause error) *AppError {
	return NewAppError(CopyFailed, message, cause)
}
