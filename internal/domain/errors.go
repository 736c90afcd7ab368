package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels every layer maps against. Adapters wrap them; the HTTP layer
// picks a status from them with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrShutdown    = errors.New("shutting down")
)

// MsgRequired is the field message for a missing value.
const MsgRequired = "is required"

// ValidationError lists the offending fields and their messages. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Invalid returns a ValidationError for fields, or nil if fields is empty,
// so validators can collect into a map and return Invalid(fields).
func Invalid(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// InvalidField is a ValidationError naming a single field.
func InvalidField(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists fields in name order so messages are stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
