package validator

import (
	"strings"
)

// FieldError names the offending request field by its JSON name.
type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) Error() string {
	return fe.Field + ": " + fe.Message
}

type ValidationError struct {
	Errors []FieldError
}

func (ve ValidationError) Error() string {
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Error()
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

// Fields lists the offending fields in report order.
func (ve ValidationError) Fields() []string {
	names := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		names[i] = fe.Field
	}
	return names
}

type Validator interface {
	Validate(s interface{}) error
}
