package binder

import (
	"errors"
	"fmt"
)

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
	ErrValidation           = errors.New("validation failed")
)

// FieldError reports the first struct field that failed to bind, together
// with the underlying cause (multiform.ErrNotFound, multiform.ErrDuplicateField,
// or a *multiform.TypeError).
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("bind field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
