package form

import (
	"errors"
	"fmt"
	"strings"

	"onboarding/internal/core/domain/validation"
)

var (
	ErrUnknownKind    = errors.New("unknown form kind")
	ErrFieldNotInForm = errors.New("field does not belong to the form")
	ErrFormNotFound   = errors.New("form not found")
)

type Kind string

const (
	KindLogin        Kind = "login"
	KindRegistration Kind = "registration"
)

var kindFields = map[Kind][]validation.Name{
	KindLogin: {
		validation.FieldEmail,
		validation.FieldPassword,
	},
	KindRegistration: validation.All(),
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := kindFields[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Fields returns the fields of the form in declaration order.
func (k Kind) Fields() []validation.Name {
	fields := kindFields[k]
	out := make([]validation.Name, len(fields))
	copy(out, fields)
	return out
}

// Validator is the part of the field validator a form needs.
type Validator interface {
	Validate(field validation.Name, value validation.Value, ctx *validation.Context) string
}

// State is the page-owned state of one form: values, touched flags and the
// last computed error of every field.
type State struct {
	ID                  string
	Kind                Kind
	Locale              string
	Values              map[validation.Name]validation.Value
	Touched             map[validation.Name]bool
	Errors              map[validation.Name]string
	Submitted           bool
	PasswordVisible     bool
	ConfirmationVisible bool
}

func New(id string, kind Kind, locale string) *State {
	s := &State{
		ID:      id,
		Kind:    kind,
		Locale:  locale,
		Values:  make(map[validation.Name]validation.Value),
		Touched: make(map[validation.Name]bool),
		Errors:  make(map[validation.Name]string),
	}
	for _, field := range kind.Fields() {
		if field == validation.FieldTermsAccepted {
			s.Values[field] = validation.Flag(false)
			continue
		}
		s.Values[field] = validation.Text("")
	}
	return s
}

func (s *State) GetID() string {
	return s.ID
}

func (s *State) Has(field validation.Name) bool {
	_, ok := s.Values[field]
	return ok
}

// Context snapshots the sibling values needed by cross-field rules. Forms
// without a confirmation field have no context.
func (s *State) Context() *validation.Context {
	if !s.Has(validation.FieldPasswordConfirmation) {
		return nil
	}
	return &validation.Context{Password: s.Values[validation.FieldPassword].Text()}
}

// Change stores a new value and revalidates the field immediately. A password
// change also revalidates an already touched confirmation.
func (s *State) Change(v Validator, field validation.Name, value validation.Value) error {
	if !s.Has(field) {
		return fmt.Errorf("%w: %s not in %s", ErrFieldNotInForm, field, s.Kind)
	}

	s.Values[field] = value
	s.Touched[field] = true
	s.Errors[field] = v.Validate(field, value, s.Context())

	if field == validation.FieldPassword && s.Touched[validation.FieldPasswordConfirmation] {
		confirmation := validation.FieldPasswordConfirmation
		s.Errors[confirmation] = v.Validate(confirmation, s.Values[confirmation], s.Context())
	}
	return nil
}

// Submit normalizes the values, validates every field in declared order and
// returns the first error message. An empty result means the form is accepted.
func (s *State) Submit(v Validator) string {
	s.normalize()
	s.Submitted = true

	ctx := s.Context()
	var first string
	for _, field := range s.Kind.Fields() {
		s.Touched[field] = true
		msg := v.Validate(field, s.Values[field], ctx)
		s.Errors[field] = msg
		if first == "" {
			first = msg
		}
	}
	return first
}

// FirstError returns the first stored error in declared order.
func (s *State) FirstError() (validation.Name, string) {
	for _, field := range s.Kind.Fields() {
		if msg := s.Errors[field]; msg != "" {
			return field, msg
		}
	}
	return "", ""
}

// ShowError reports whether the field's error should be rendered: the field is
// invalid and the user either touched it or tried to submit.
func (s *State) ShowError(field validation.Name) bool {
	return s.Errors[field] != "" && (s.Touched[field] || s.Submitted)
}

func (s *State) DisplayedError(field validation.Name) string {
	if !s.ShowError(field) {
		return ""
	}
	return s.Errors[field]
}

// Payload returns the submitted values without the password confirmation.
func (s *State) Payload() map[validation.Name]validation.Value {
	out := make(map[validation.Name]validation.Value, len(s.Values))
	for field, value := range s.Values {
		if field == validation.FieldPasswordConfirmation {
			continue
		}
		out[field] = value
	}
	return out
}

// TogglePasswordVisibility flips the show/hide state of the password input,
// or of the confirmation input, and returns the new state.
func (s *State) TogglePasswordVisibility(confirmation bool) bool {
	if confirmation {
		s.ConfirmationVisible = !s.ConfirmationVisible
		return s.ConfirmationVisible
	}
	s.PasswordVisible = !s.PasswordVisible
	return s.PasswordVisible
}

func (s *State) Clone() *State {
	c := *s
	c.Values = make(map[validation.Name]validation.Value, len(s.Values))
	for k, v := range s.Values {
		c.Values[k] = v
	}
	c.Touched = make(map[validation.Name]bool, len(s.Touched))
	for k, v := range s.Touched {
		c.Touched[k] = v
	}
	c.Errors = make(map[validation.Name]string, len(s.Errors))
	for k, v := range s.Errors {
		c.Errors[k] = v
	}
	return &c
}

func (s *State) normalize() {
	for field, value := range s.Values {
		if value.IsFlag() {
			continue
		}
		switch field {
		case validation.FieldNames, validation.FieldSurnames:
			s.Values[field] = validation.Text(strings.TrimSpace(value.Text()))
		case validation.FieldEmail:
			s.Values[field] = validation.Text(strings.ToLower(strings.TrimSpace(value.Text())))
		case validation.FieldPhone:
			s.Values[field] = validation.Text(validation.CompactPhone(value.Text()))
		}
	}
}
