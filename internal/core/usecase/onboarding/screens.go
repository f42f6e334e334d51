package onboarding

import (
	"context"

	"onboarding/internal/core/domain/route"
	"onboarding/internal/core/domain/validation"
)

// Perform runs a navigation-only action of a screen.
func (uc *Usecase) Perform(ctx context.Context, screen route.Screen, action route.Action) error {
	t, err := route.Next(screen, action)
	if err != nil {
		return err
	}

	if t.Back {
		uc.navigator.Back(ctx)
		return nil
	}
	uc.navigator.Navigate(ctx, t.To)
	return nil
}

// ValidateField exposes the bare field validator for a locale.
func (uc *Usecase) ValidateField(ctx context.Context, locale string, field validation.Name, value validation.Value, vctx *validation.Context) (validation.Kind, string) {
	kind, msg := uc.localizer.Validator(locale).Check(field, value, vctx)
	uc.recorder.RecordFieldCheck(ctx, field, kind)
	return kind, msg
}
