package onboarding

import (
	"context"
	"fmt"

	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/registration"
	"onboarding/internal/core/domain/route"
	"onboarding/internal/core/domain/validation"
	"onboarding/internal/platform/logger"
)

func (uc *Usecase) StartForm(ctx context.Context, kind form.Kind, locale string) (*form.State, error) {
	log := logger.FromContext(ctx)

	state := form.New(uc.newID(), kind, locale)
	if err := uc.forms.Save(ctx, state); err != nil {
		return nil, err
	}

	log.Debug("Form started", logger.String("form_id", state.ID), logger.String("kind", string(kind)))
	return state, nil
}

func (uc *Usecase) GetForm(ctx context.Context, id string) (*form.State, error) {
	return uc.forms.GetByID(ctx, id)
}

// ChangeField applies a value change in real-time mode.
func (uc *Usecase) ChangeField(ctx context.Context, id string, field validation.Name, value validation.Value) (*form.State, error) {
	defer uc.locks.lock(id)()

	state, err := uc.forms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := state.Change(uc.localizer.Validator(state.Locale), field, value); err != nil {
		return nil, err
	}

	if err := uc.forms.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *Usecase) TogglePasswordVisibility(ctx context.Context, id string, confirmation bool) (*form.State, error) {
	defer uc.locks.lock(id)()

	state, err := uc.forms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if confirmation && !state.Has(validation.FieldPasswordConfirmation) {
		return nil, fmt.Errorf("%w: %s not in %s", form.ErrFieldNotInForm, validation.FieldPasswordConfirmation, state.Kind)
	}
	state.TogglePasswordVisibility(confirmation)

	if err := uc.forms.Update(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Submit validates the whole form in submit mode. A rejected form shows the
// first error and stays on screen; an accepted one moves on.
func (uc *Usecase) Submit(ctx context.Context, id string) (*form.State, bool, error) {
	log := logger.FromContext(ctx)
	defer uc.locks.lock(id)()

	state, err := uc.forms.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	first := state.Submit(uc.localizer.Validator(state.Locale))
	if err := uc.forms.Update(ctx, state); err != nil {
		return nil, false, err
	}

	if first != "" {
		field, _ := state.FirstError()
		log.Debug("Form rejected",
			logger.String("form_id", state.ID),
			logger.String("kind", string(state.Kind)),
			logger.String("field", field.String()))
		uc.recorder.RecordSubmission(ctx, state.Kind, false, field)
		uc.notifier.Notify(ctx, uc.errorToast(first))
		return state, false, nil
	}

	var accepted bool
	switch state.Kind {
	case form.KindLogin:
		accepted = uc.completeLogin(ctx, state)
	case form.KindRegistration:
		accepted = uc.completeRegistration(ctx, state)
	default:
		return nil, false, fmt.Errorf("%w: %q", form.ErrUnknownKind, state.Kind)
	}

	uc.recorder.RecordSubmission(ctx, state.Kind, accepted, "")
	return state, accepted, nil
}

func (uc *Usecase) completeLogin(ctx context.Context, state *form.State) bool {
	logger.FromContext(ctx).Info("Login accepted", logger.String("form_id", state.ID))

	uc.notifier.Notify(ctx, uc.successToast(uc.localizer.Message(state.Locale, keyLoginSuccess)))
	uc.navigator.Navigate(ctx, route.Home)
	return true
}

func (uc *Usecase) completeRegistration(ctx context.Context, state *form.State) bool {
	log := logger.FromContext(ctx)

	reg, err := registration.FromPayload(uc.newID(), state.Payload(), uc.now())
	if err == nil {
		err = uc.registrations.Save(ctx, reg)
	}
	if err != nil {
		log.Warn("Registration failed", logger.String("form_id", state.ID), logger.Error(err))
		uc.notifier.Notify(ctx, uc.errorToast(uc.localizer.Message(state.Locale, keyRegistrationFailure)))
		return false
	}

	log.Info("Registration accepted",
		logger.String("form_id", state.ID),
		logger.String("registration_id", reg.ID))
	uc.notifier.Notify(ctx, uc.successToast(uc.localizer.Message(state.Locale, keyRegistrationSuccess)))
	uc.navigator.Navigate(ctx, route.Login)
	return true
}
