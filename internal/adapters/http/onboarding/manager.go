package onboarding

import (
	"context"

	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/route"
	"onboarding/internal/core/domain/validation"
)

type Manager interface {
	StartForm(ctx context.Context, kind form.Kind, locale string) (*form.State, error)
	GetForm(ctx context.Context, id string) (*form.State, error)
	ChangeField(ctx context.Context, id string, field validation.Name, value validation.Value) (*form.State, error)
	TogglePasswordVisibility(ctx context.Context, id string, confirmation bool) (*form.State, error)
	Submit(ctx context.Context, id string) (*form.State, bool, error)
	Perform(ctx context.Context, screen route.Screen, action route.Action) error
	ValidateField(ctx context.Context, locale string, field validation.Name, value validation.Value, vctx *validation.Context) (validation.Kind, string)
}
