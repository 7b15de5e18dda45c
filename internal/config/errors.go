package config

import (
	"errors"
	"fmt"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file was not found.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the configuration file could not be read or decoded.
	ConfigInvalid
	// ConfigEnvInvalid indicates a T3INIT_* variable could not be parsed.
	ConfigEnvInvalid
	// ConfigValidationFailed indicates a decoded value is out of range, such as an
	// unknown auth provider name.
	ConfigValidationFailed
)

// ConfigError represents a configuration-related error.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// File is the configuration file path, "environment" for env errors, or
	// empty when the merged configuration failed validation.
	File string
	// Field is the dotted config key that caused the error, e.g. "defaults.db".
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	where := "configuration"
	if e.File != "" {
		where = fmt.Sprintf("configuration error in %s", e.File)
	}
	if e.Field != "" {
		where = fmt.Sprintf("%s [field: %s]", where, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

func newConfigError(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

func newFieldError(field, message string, cause error) *ConfigError {
	err := newConfigError(ConfigValidationFailed, "", message, cause)
	err.Field = field
	return err
}

// IsNotFound reports whether err is a ConfigNotFound error.
func IsNotFound(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound
}
