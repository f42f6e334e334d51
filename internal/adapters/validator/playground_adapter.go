package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/route"
	"onboarding/internal/core/domain/validation"
	validatorPlatform "onboarding/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

// NewPlaygroundAdapter validates request DTOs. Besides the built-in tags it
// knows fieldname, formkind, screen and action.
func NewPlaygroundAdapter() (validatorPlatform.Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	custom := map[string]validator.Func{
		"fieldname": func(fl validator.FieldLevel) bool {
			_, err := validation.ParseName(fl.Field().String())
			return err == nil
		},
		"formkind": func(fl validator.FieldLevel) bool {
			_, err := form.ParseKind(fl.Field().String())
			return err == nil
		},
		"screen": func(fl validator.FieldLevel) bool {
			return route.Screen(fl.Field().String()).Valid()
		},
		"action": func(fl validator.FieldLevel) bool {
			return route.Action(fl.Field().String()).Valid()
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}

	return &playgroundValidator{validate: v}, nil
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   fe.Field(),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name)
	default:
		return name
	}
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "fieldname":
		return fmt.Sprintf("Unknown field %q", e.Value())
	case "formkind":
		return fmt.Sprintf("Unknown form kind %q", e.Value())
	case "screen":
		return fmt.Sprintf("Unknown screen %q", e.Value())
	case "action":
		return fmt.Sprintf("Unknown action %q", e.Value())
	case "max":
		return fmt.Sprintf("This field must be at most %s characters long", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
