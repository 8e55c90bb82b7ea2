// Package errors defines the typed errors returned by gallery loading and
// downloading. The lightbox component itself never returns errors.
package errors

import (
	"fmt"
)

// ParseError is a manifest decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a manifest or settings validation issue.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError reports a gallery source that could not be read.
type SourceError struct {
	Kind     string
	Location string
	Err      error
}

// NewSourceError constructs a SourceError for a source kind such as "dir" or "git".
func NewSourceError(kind, location string, err error) error {
	return &SourceError{Kind: kind, Location: location, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("source error [%s] %s: %v", e.Kind, e.Location, e.Err)
	}
	return fmt.Sprintf("source error %s: %v", e.Location, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DownloadError is an environment-level download failure.
type DownloadError struct {
	Index int
	URL   string
	Err   error
}

// NewDownloadError constructs a DownloadError.
func NewDownloadError(index int, url string, err error) error {
	return &DownloadError{Index: index, URL: url, Err: err}
}

func (e *DownloadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("download error for image %d (%s): %v", e.Index, e.URL, e.Err)
}

// Unwrap exposes the root error.
func (e *DownloadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
