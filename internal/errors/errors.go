// Package errors provides structured error types for fileheader.
//
// Every failure the engine can produce is a *PathError carrying an
// error category, a stable code, and the path it applies to. Callers
// classify failures with the Is* predicates instead of matching on
// message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeBinary     ErrorType = "binary"
	ErrorTypeExtension  ErrorType = "extension"
	ErrorTypeTraversal  ErrorType = "traversal"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeValidation ErrorType = "validation"
)

// Common error codes.
const (
	ErrCodeIO               = "ERR_IO"
	ErrCodeBinaryFile       = "ERR_BINARY_FILE"
	ErrCodeUnknownExtension = "ERR_UNKNOWN_EXTENSION"
	ErrCodeTraversal        = "ERR_TRAVERSAL"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
)

// PathError is a structured error scoped to a single path.
//
// Path may be empty for errors raised before a path is known, e.g. a
// checker detecting binary content in an anonymous stream; callers
// attach the path via WithPath at the point where it is known.
type PathError struct {
	Type    ErrorType
	Code    string
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Path != "" {
		parts = append(parts, e.Path+":")
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison on category and code.
func (e *PathError) Is(target error) bool {
	var t *PathError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithPath returns a copy of the error attributed to path.
func (e *PathError) WithPath(path string) *PathError {
	clone := *e
	clone.Path = path

	return &clone
}

// Error creation functions

// NewIOError creates an I/O error for path wrapping cause.
func NewIOError(path string, cause error) *PathError {
	return &PathError{
		Type:    ErrorTypeIO,
		Code:    ErrCodeIO,
		Path:    path,
		Message: "i/o failure",
		Cause:   cause,
	}
}

// NewBinaryError reports that content within the scanned window did
// not decode as UTF-8 text.
func NewBinaryError(path string) *PathError {
	return &PathError{
		Type:    ErrorTypeBinary,
		Code:    ErrCodeBinaryFile,
		Path:    path,
		Message: "content is not valid UTF-8 text",
	}
}

// NewExtensionError reports that no comment delimiters are known for
// the file at path.
func NewExtensionError(path string) *PathError {
	return &PathError{
		Type:    ErrorTypeExtension,
		Code:    ErrCodeUnknownExtension,
		Path:    path,
		Message: "unknown file extension",
	}
}

// NewTraversalError reports a directory walk failure under root.
func NewTraversalError(root string, cause error) *PathError {
	return &PathError{
		Type:    ErrorTypeTraversal,
		Code:    ErrCodeTraversal,
		Path:    root,
		Message: "directory traversal failed",
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(message string) *PathError {
	return &PathError{
		Type:    ErrorTypeConfig,
		Code:    ErrCodeConfigInvalid,
		Message: message,
	}
}

// NewValidationError creates a validation error for a named field.
func NewValidationError(field, message string) *PathError {
	return &PathError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeValidationFailed,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}

// Classification predicates

// IsBinary checks whether err reports non-text content.
func IsBinary(err error) bool {
	return isType(err, ErrorTypeBinary)
}

// IsUnrecognizedExtension checks whether err reports a file type
// without a delimiter mapping.
func IsUnrecognizedExtension(err error) bool {
	return isType(err, ErrorTypeExtension)
}

// IsTraversal checks whether err reports a directory walk failure.
func IsTraversal(err error) bool {
	return isType(err, ErrorTypeTraversal)
}

// IsIO checks whether err reports an I/O failure.
func IsIO(err error) bool {
	return isType(err, ErrorTypeIO)
}

func isType(err error, typ ErrorType) bool {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Type == typ
	}

	return false
}
