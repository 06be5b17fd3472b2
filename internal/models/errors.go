package models

import "fmt"

// ValidationError marks a request rejected before any processing.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GenerationError wraps any failure of the text generation boundary.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("Error generating content: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ExtractionError wraps any failure to turn an uploaded file into text.
type ExtractionError struct {
	FileName string
	Err      error
}

func (e *ExtractionError) Error() string {
	return e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
