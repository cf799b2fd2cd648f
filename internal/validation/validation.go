// Package validation holds the whitelist input checks shared by the
// directories. Rules are expressed as go-playground/validator tags and
// failures are translated into the typed failures of package types.
package validation

import (
	"errors"
	"fmt"

	"github.com/aanand-mishra/course-registration/internal/types"
	"github.com/go-playground/validator/v10"
)

const (
	// EmailRule accepts any non-empty string containing both '@' and '.'.
	EmailRule = "required,contains=@,contains=."

	// PasswordRule requires at least six characters.
	PasswordRule = "min=6"
)

// MinPasswordLength mirrors PasswordRule for prompts.
const MinPasswordLength = 6

// validator.Validate caches struct metadata and is safe for reuse.
var validate = validator.New()

// Registration is the input of a student sign-up. Field order is the
// order in which failures are reported.
type Registration struct {
	Name     string
	Email    string `validate:"required,contains=@,contains=."`
	Password string `validate:"min=6"`
}

// Email reports types.ErrInvalidEmail when email fails EmailRule.
func Email(email string) error {
	if err := validate.Var(email, EmailRule); err != nil {
		return fmt.Errorf("%w: %q", types.ErrInvalidEmail, email)
	}
	return nil
}

// Password reports types.ErrWeakPassword when password fails PasswordRule.
func Password(password string) error {
	if err := validate.Var(password, PasswordRule); err != nil {
		return fmt.Errorf("%w: must be at least %d characters", types.ErrWeakPassword, MinPasswordLength)
	}
	return nil
}

// Validate checks r and returns the typed failure of the first field
// that broke a rule.
func (r Registration) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validation: %w", err)
	}

	switch fieldErrs[0].Field() {
	case "Email":
		return fmt.Errorf("%w: %q", types.ErrInvalidEmail, r.Email)
	case "Password":
		return fmt.Errorf("%w: must be at least %d characters", types.ErrWeakPassword, MinPasswordLength)
	default:
		return fmt.Errorf("validation: field %s is invalid", fieldErrs[0].Field())
	}
}
