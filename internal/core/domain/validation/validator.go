package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a validation outcome.
type Kind int

const (
	KindNone Kind = iota
	KindPresence
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindPresence:
		return "presence"
	case KindFormat:
		return "format"
	default:
		return "none"
	}
}

// Policy holds the region specific constants of the rule set.
type Policy struct {
	PhoneDigits       int
	PasswordMinLength int
}

func DefaultPolicy() Policy {
	return Policy{
		PhoneDigits:       9,
		PasswordMinLength: 8,
	}
}

var (
	// \s alone is ASCII only; \p{Zs} adds no-break and other Unicode spaces.
	namePattern  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\p{Zs}\t\n\v\f\r]+$`)
	emailPattern = regexp.MustCompile(`^[^\p{Zs}\t\n\v\f\r@]+@[^\p{Zs}\t\n\v\f\r@]+\.[^\p{Zs}\t\n\v\f\r@]+$`)
)

type rule struct {
	present func(value Value) bool
	// format is nil when the presence check is the only check.
	format func(v *Validator, value Value, ctx *Context) bool
	args   func(v *Validator) []string
}

var rules = map[Name]rule{
	FieldNames: {
		present: notBlank,
		format: func(_ *Validator, value Value, _ *Context) bool {
			return namePattern.MatchString(strings.TrimSpace(value.Text()))
		},
	},
	FieldSurnames: {
		present: notBlank,
		format: func(_ *Validator, value Value, _ *Context) bool {
			return namePattern.MatchString(strings.TrimSpace(value.Text()))
		},
	},
	FieldEmail: {
		present: notBlank,
		format: func(_ *Validator, value Value, _ *Context) bool {
			return emailPattern.MatchString(strings.TrimSpace(value.Text()))
		},
	},
	FieldPhone: {
		present: func(value Value) bool { return CompactPhone(value.Text()) != "" },
		format: func(v *Validator, value Value, _ *Context) bool {
			return v.phone.MatchString(CompactPhone(value.Text()))
		},
		args: func(v *Validator) []string { return []string{"digits", strconv.Itoa(v.policy.PhoneDigits)} },
	},
	FieldPassword: {
		present: notBlank,
		format: func(v *Validator, value Value, _ *Context) bool {
			return v.strongPassword(strings.TrimSpace(value.Text()))
		},
		args: func(v *Validator) []string { return []string{"min", strconv.Itoa(v.policy.PasswordMinLength)} },
	},
	FieldPasswordConfirmation: {
		present: notBlank,
		format: func(_ *Validator, value Value, ctx *Context) bool {
			if ctx == nil {
				return true
			}
			return value.Text() == ctx.Password
		},
	},
	FieldTermsAccepted: {
		present: Value.IsTrue,
	},
}

// Validator maps a field and its value to a localized error message. It has
// no mutable state and may be shared between goroutines.
type Validator struct {
	policy  Policy
	catalog Catalog
	phone   *regexp.Regexp
}

func New(catalog Catalog, policy Policy) *Validator {
	if policy.PhoneDigits <= 0 {
		policy.PhoneDigits = DefaultPolicy().PhoneDigits
	}
	if policy.PasswordMinLength <= 0 {
		policy.PasswordMinLength = DefaultPolicy().PasswordMinLength
	}
	return &Validator{
		policy:  policy,
		catalog: catalog,
		phone:   regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, policy.PhoneDigits)),
	}
}

func (v *Validator) Policy() Policy {
	return v.policy
}

// Validate returns the error message for the field, or "" when it passes.
func (v *Validator) Validate(field Name, value Value, ctx *Context) string {
	_, msg := v.Check(field, value, ctx)
	return msg
}

// Check runs the presence check, then the format check, and reports the
// first one that fails.
func (v *Validator) Check(field Name, value Value, ctx *Context) (Kind, string) {
	r, ok := rules[field]
	if !ok {
		return KindNone, ""
	}

	if !r.present(value) {
		return KindPresence, v.catalog.Message(RequiredKey(field))
	}

	if r.format != nil && !r.format(v, value, ctx) {
		var args []string
		if r.args != nil {
			args = r.args(v)
		}
		return KindFormat, v.catalog.Message(InvalidKey(field), args...)
	}

	return KindNone, ""
}

func (v *Validator) strongPassword(password string) bool {
	if utf8.RuneCountInString(password) < v.policy.PasswordMinLength {
		return false
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func notBlank(value Value) bool {
	return strings.TrimSpace(value.Text()) != ""
}

// CompactPhone trims the number and drops every whitespace character.
func CompactPhone(phone string) string {
	return strings.Join(strings.FieldsFunc(phone, unicode.IsSpace), "")
}
