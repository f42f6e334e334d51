package onboarding

import (
	"time"

	"onboarding/internal/core/domain/notification"
	"onboarding/internal/core/domain/validation"
	"onboarding/internal/core/ports"
)

const (
	keyLoginSuccess        = "ui.login.success"
	keyRegistrationSuccess = "ui.registration.success"
	keyRegistrationFailure = "ui.registration.failure"
)

// Localizer hands out the locale bound validator and UI texts.
type Localizer interface {
	Validator(locale string) *validation.Validator
	Message(locale, key string, args ...string) string
}

type ToastSettings struct {
	ErrorDuration   time.Duration
	SuccessDuration time.Duration
	Position        notification.Position
}

type Dependencies struct {
	Forms         ports.FormRepository
	Registrations ports.RegistrationRepository
	Localizer     Localizer
	Notifier      ports.Notifier
	Navigator     ports.Navigator
	Recorder      ports.ActivityRecorder
	Toasts        ToastSettings
	NewID         func() string
	Now           func() time.Time
}

type Usecase struct {
	forms         ports.FormRepository
	locks         *formLocks
	registrations ports.RegistrationRepository
	localizer     Localizer
	notifier      ports.Notifier
	navigator     ports.Navigator
	recorder      ports.ActivityRecorder
	toasts        ToastSettings
	newID         func() string
	now           func() time.Time
}

func NewUsecase(deps Dependencies) *Usecase {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Usecase{
		forms:         deps.Forms,
		locks:         newFormLocks(),
		registrations: deps.Registrations,
		localizer:     deps.Localizer,
		notifier:      deps.Notifier,
		navigator:     deps.Navigator,
		recorder:      deps.Recorder,
		toasts:        deps.Toasts,
		newID:         deps.NewID,
		now:           now,
	}
}

func (uc *Usecase) errorToast(message string) notification.Toast {
	return notification.Toast{
		Severity: notification.SeverityError,
		Message:  message,
		Duration: uc.toasts.ErrorDuration,
		Position: uc.toasts.Position,
	}
}

func (uc *Usecase) successToast(message string) notification.Toast {
	return notification.Toast{
		Severity: notification.SeveritySuccess,
		Message:  message,
		Duration: uc.toasts.SuccessDuration,
		Position: uc.toasts.Position,
	}
}
