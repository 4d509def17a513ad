// Package validator wraps struct-tag validation for the client's
// configuration and for incident records at the decode boundary.
package validator

import "github.com/go-playground/validator/v10"

// Validator wraps the go-playground validator so callers depend on this
// package rather than on the library directly.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{
		v: validator.New(),
	}
}

// Struct validates a struct based on its validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}
