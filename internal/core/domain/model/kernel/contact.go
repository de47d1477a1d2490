package kernel

import (
	"fmt"
	"regexp"

	"gescom/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// frPhonePattern is the local (French) numbering plan: a leading zero, a
// non-zero zone digit, then eight digits.
var frPhonePattern = regexp.MustCompile(`^0[1-9][0-9]{8}$`)

// validate is the shared validator instance. RFC-style email checking comes
// from the library; the phone pattern is registered as a custom rule.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("frphone", func(fl validator.FieldLevel) bool {
		return frPhonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Email is a validated e-mail address value object.
type Email struct {
	value string
}

// NewEmail validates and wraps an e-mail address.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if err := validate.Var(value, "email"); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not a well-formed address", value))
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Validate() error {
	if e.value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}

// Phone is a validated local phone number value object.
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number against the local numbering
// pattern (e.g. "0145678901").
func NewPhone(value string) (Phone, error) {
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if err := validate.Var(value, "frphone"); err != nil {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause(
			"phone", fmt.Errorf("%q does not match the local numbering pattern", value))
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) Validate() error {
	if p.value == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	return nil
}
