package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedFileType is returned for uploads that are neither PDF nor plain text.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrExtraction is returned when text cannot be read from an upload.
	ErrExtraction = errors.New("text extraction failed")
	// ErrLLMCall is returned when the summarization provider fails.
	ErrLLMCall = errors.New("llm call failed")
	// ErrEmptyExport is returned when exporting a cheatsheet with no chunks.
	ErrEmptyExport = errors.New("no content to export")
	// ErrRender is returned when the PDF cannot be generated.
	ErrRender = errors.New("pdf generation failed")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// kindError tags a cause with one of the sentinel kinds so that errors.Is
// matches both.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return fmt.Sprintf("%s: %v", e.kind, e.cause)
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func withKind(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return &kindError{kind: kind, cause: cause}
}
