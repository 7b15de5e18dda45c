package manifest

import "fmt"

// ManifestErrorType represents the type of manifest error.
type ManifestErrorType int

const (
	// ManifestNotFound indicates package.json does not exist.
	ManifestNotFound ManifestErrorType = iota
	// ManifestInvalid indicates package.json could not be read or parsed.
	ManifestInvalid
	// ManifestWriteFailed indicates package.json could not be written.
	ManifestWriteFailed
	// UnknownPackage indicates a package has no pinned version.
	UnknownPackage
	// InvalidVersion indicates a pinned version is not a valid semver range.
	InvalidVersion
)

// ManifestError represents a package manifest error.
type ManifestError struct {
	// Type is the error type.
	Type ManifestErrorType
	// Message is the error message.
	Message string
	// File is the manifest path, or the package name for UnknownPackage and
	// InvalidVersion.
	File string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("manifest error in %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("manifest error in %s: %s", e.File, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ManifestError) Unwrap() error {
	return e.Cause
}

func newManifestError(typ ManifestErrorType, file, message string, cause error) *ManifestError {
	return &ManifestError{
		Type:    typ,
		Message: message,
		File:    file,
		Cause:   cause,
	}
}
