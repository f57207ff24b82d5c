package validators

import (
	"errors"
	"strings"
)

var ErrUnsupportedType = errors.New("unsupported type for validation")

// messageInvalidRequest is used when only tag-level rules failed.
const messageInvalidRequest = "Invalid request data"

// FieldError describes a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// RequestValidationError is returned when a request body breaks one or more
// rules. Details holds one entry per failed rule.
type RequestValidationError struct {
	Details []FieldError
}

// Message is the summary shown to the client. A failed cross-field rule
// carries its own wording; plain tag failures share a generic one.
func (e *RequestValidationError) Message() string {
	for _, d := range e.Details {
		if _, ok := crossFieldMessages[d.Type]; ok {
			return d.Message
		}
	}
	return messageInvalidRequest
}

func (e *RequestValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ImageValidationError carries the client-facing reason an image was
// rejected.
type ImageValidationError struct {
	Message string
}

func (e *ImageValidationError) Error() string {
	return e.Message
}

func imageError(message string) error {
	return &ImageValidationError{Message: message}
}
