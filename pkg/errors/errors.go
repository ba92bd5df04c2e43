package errors

import (
	"errors"
	"fmt"
	"strings"
)

// DomainErrorType represents the category of domain error
type DomainErrorType string

const (
	// DomainValidationError indicates a parameter outside its allowed range
	DomainValidationError DomainErrorType = "VALIDATION_ERROR"

	// DomainGeometryError indicates points that do not form the claimed figure
	DomainGeometryError DomainErrorType = "GEOMETRY_ERROR"
)

// DomainError represents a domain-specific error with rich context
type DomainError struct {
	Type    DomainErrorType        `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// NewDomainError creates a new domain error
func NewDomainError(errorType DomainErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:    errorType,
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// Clone returns a copy that can carry its own details and cause.
// The predefined errors below are shared and must never be mutated directly.
func (e *DomainError) Clone() *DomainError {
	details := make(map[string]interface{}, len(e.Details))
	for k, v := range e.Details {
		details[k] = v
	}
	return &DomainError{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause adds a cause to the error
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// WithMessage replaces the human readable message
func (e *DomainError) WithMessage(message string) *DomainError {
	e.Message = message
	return e
}

// Is checks if the error is of a specific type
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Error codes, one per way a figure can be rejected
const (
	CodeInvalidCoordinate = "INVALID_COORDINATE"
	CodeInvalidRadius     = "INVALID_RADIUS"
	CodeInvalidSide       = "INVALID_SIDE"
	CodeInvalidAngle      = "INVALID_ANGLE"
	CodeNotARectangle     = "NOT_A_RECTANGLE"
	CodeDegenerateShape   = "DEGENERATE_SHAPE"
	CodeNotASquare        = "NOT_A_SQUARE"
	CodeNotARhombus       = "NOT_A_RHOMBUS"
	CodeInvalidGeometry   = "INVALID_GEOMETRY"
	CodeCollinearPoints   = "COLLINEAR_POINTS"

	CodeFieldValidation = "FIELD_VALIDATION_ERROR"
)

var (
	ErrInvalidCoordinate = NewDomainError(
		DomainValidationError,
		CodeInvalidCoordinate,
		"Coordinate cannot be less than 0",
	)

	ErrInvalidRadius = NewDomainError(
		DomainValidationError,
		CodeInvalidRadius,
		"Radius cannot be less than 0",
	)

	ErrInvalidSide = NewDomainError(
		DomainValidationError,
		CodeInvalidSide,
		"Side length cannot be less than 0",
	)

	ErrInvalidAngle = NewDomainError(
		DomainValidationError,
		CodeInvalidAngle,
		"Angle must be acute",
	)

	ErrNotARectangle = NewDomainError(
		DomainGeometryError,
		CodeNotARectangle,
		"Points do not form a rectangle",
	)

	ErrDegenerateShape = NewDomainError(
		DomainGeometryError,
		CodeDegenerateShape,
		"Points form a degenerate shape",
	)

	ErrNotASquare = NewDomainError(
		DomainGeometryError,
		CodeNotASquare,
		"Points do not form a square",
	)

	ErrNotARhombus = NewDomainError(
		DomainGeometryError,
		CodeNotARhombus,
		"Points do not form a rhombus",
	)

	ErrInvalidGeometry = NewDomainError(
		DomainGeometryError,
		CodeInvalidGeometry,
		"Invalid rhombus geometry",
	)

	ErrCollinearPoints = NewDomainError(
		DomainGeometryError,
		CodeCollinearPoints,
		"Points cannot be in one line",
	)
)

// GetDomainError extracts DomainError from an error chain
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// CodeOf returns the code of the outermost domain error in the chain, or "" if there is none.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		return CodeFieldValidation
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code
	}
	return ""
}

// IsGeometry checks if an error rejects the shape of the input points
func IsGeometry(err error) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Type == DomainGeometryError
}

// ValidationErrors aggregates multiple validation errors
type ValidationErrors struct {
	Errors []*DomainError `json:"errors"`
}

// NewValidationErrors creates a new validation errors collection
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]*DomainError, 0),
	}
}

// Add adds a validation error
func (v *ValidationErrors) Add(field string, message string) {
	err := NewDomainError(DomainValidationError, CodeFieldValidation, message).
		WithDetail("field", field)
	v.Errors = append(v.Errors, err)
}

// HasErrors returns true if there are validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}

	messages := make([]string, len(v.Errors))
	for i, err := range v.Errors {
		messages[i] = err.Message
	}
	return fmt.Sprintf("Validation failed: %s", strings.Join(messages, "; "))
}

// ToMap groups messages by field
func (v *ValidationErrors) ToMap() map[string][]string {
	result := make(map[string][]string)

	for _, err := range v.Errors {
		field, _ := err.Details["field"].(string)
		result[field] = append(result[field], err.Message)
	}

	return result
}
