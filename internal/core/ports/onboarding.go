package ports

import (
	"context"

	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/notification"
	"onboarding/internal/core/domain/registration"
	"onboarding/internal/core/domain/route"
	"onboarding/internal/core/domain/validation"
)

type FormRepository interface {
	Save(ctx context.Context, state *form.State) error
	GetByID(ctx context.Context, id string) (*form.State, error)
	Update(ctx context.Context, state *form.State) error
}

type RegistrationRepository interface {
	Save(ctx context.Context, reg *registration.Registration) error
	GetByID(ctx context.Context, id string) (*registration.Registration, error)
}

// Notifier shows a toast to the user.
type Notifier interface {
	Notify(ctx context.Context, toast notification.Toast)
}

// Navigator moves the user to another screen.
type Navigator interface {
	Navigate(ctx context.Context, to route.Path)
	Back(ctx context.Context)
}

// ActivityRecorder observes validation traffic. For submissions field is the
// first invalid field of a rejected form and empty otherwise.
type ActivityRecorder interface {
	RecordSubmission(ctx context.Context, kind form.Kind, accepted bool, field validation.Name)
	RecordFieldCheck(ctx context.Context, field validation.Name, kind validation.Kind)
}
