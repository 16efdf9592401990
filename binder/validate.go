package binder

import (
	"fmt"

	"github.com/dmitrymomot/multiform"
)

// Validatable is implemented by request types that carry their own semantic
// validation (ranges, lengths, formats). The binder treats it as an opaque
// capability: what Validate checks is entirely up to the record type.
type Validatable interface {
	Validate() error
}

// Validate runs the target's validation when it implements Validatable and
// wraps any failure in ErrValidation, keeping validation failures
// distinguishable from binding failures. Targets without a Validate method
// pass trivially.
func Validate(v any) error {
	if validatable, ok := v.(Validatable); ok {
		if err := validatable.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return nil
}

// BindValidated binds the form into the target and then runs its validation.
// Binding failures surface as *FieldError, validation failures as
// ErrValidation; the target must be discarded on either.
func BindValidated(form *multiform.Form, v any) error {
	if err := Bind(form, v); err != nil {
		return err
	}
	return Validate(v)
}
