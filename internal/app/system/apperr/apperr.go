// Package apperr defines the error taxonomy shared by stores and handlers.
//
// Stores return these sentinels (or a *Validation) instead of raw driver
// errors so handlers can map outcomes to status codes without inspecting
// MongoDB error codes themselves.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrChildNotFound = errors.New("parent or child not found")
	ErrConflict      = errors.New("duplicate key")
	ErrUnauthorized  = errors.New("invalid username or password")
)

// FieldError reports a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validation carries field-level validation failures. It is returned by
// store create/update/append operations before any write is attempted.
type Validation struct {
	Fields []FieldError
}

func (v *Validation) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error and returns the receiver for chaining.
func (v *Validation) Add(field, message string) *Validation {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
	return v
}

// Or returns nil when no field errors were collected, otherwise v.
// Callers build up a *Validation and finish with Or() so the happy path
// returns no error.
func (v *Validation) Or() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

// AsValidation unwraps err into a *Validation if it is one.
func AsValidation(err error) (*Validation, bool) {
	var v *Validation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
