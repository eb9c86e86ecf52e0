// Package validation builds the validator shared by form drafts and response decoding.
package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var simpleEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// New returns a validator with the simple_email tag registered. It panics if
// the tag cannot be registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := register(v, "simple_email", simpleEmail); err != nil {
		panic(err)
	}
	return v
}

func register(v *validator.Validate, tag string, re *regexp.Regexp) error {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		return fmt.Errorf("register %q validation: %w", tag, err)
	}
	return nil
}
