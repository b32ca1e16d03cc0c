package platform

import (
	"errors"
	"fmt"
)

// Declaration errors.
var (
	// ErrNoName indicates a declaration without a name.
	ErrNoName = errors.New("platform: declaration name is required")

	// ErrInvalidBinding indicates a binding that cannot be built.
	ErrInvalidBinding = errors.New("platform: invalid binding")

	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("platform: unsupported declaration format")
)

// ParseError represents an error while decoding a declaration file.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
