package validation

import (
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("unknown field")

// Name identifies one of the onboarding form fields.
type Name string

const (
	FieldNames                Name = "names"
	FieldSurnames             Name = "surnames"
	FieldEmail                Name = "email"
	FieldPhone                Name = "phone"
	FieldPassword             Name = "password"
	FieldPasswordConfirmation Name = "passwordConfirmation"
	FieldTermsAccepted        Name = "termsAccepted"
)

var declared = []Name{
	FieldNames,
	FieldSurnames,
	FieldEmail,
	FieldPhone,
	FieldPassword,
	FieldPasswordConfirmation,
	FieldTermsAccepted,
}

// All returns every field in declaration order.
func All() []Name {
	out := make([]Name, len(declared))
	copy(out, declared)
	return out
}

func ParseName(s string) (Name, error) {
	for _, n := range declared {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (n Name) String() string {
	return string(n)
}
