package onboarding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"onboarding/internal/adapters/effects"
	"onboarding/internal/adapters/http/response"
	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/route"
	"onboarding/internal/core/domain/validation"
	httpErrors "onboarding/internal/platform/http"
	"onboarding/internal/platform/logger"
	"onboarding/internal/platform/validator"
)

type Handler struct {
	manager  Manager
	validate validator.Validator
	settings Settings
}

func NewHandler(manager Manager, validate validator.Validator, settings Settings) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
		settings: settings,
	}
}

func (h *Handler) mapDomainError(err error) error {
	switch {
	case errors.Is(err, form.ErrFormNotFound):
		return httpErrors.NotFound("form_not_found", "Form not found", err)
	case errors.Is(err, form.ErrFieldNotInForm):
		return httpErrors.BadRequest("field_not_in_form", "Field does not belong to the form", err)
	case errors.Is(err, form.ErrUnknownKind):
		return httpErrors.BadRequest("unknown_form_kind", "Unknown form kind", err)
	case errors.Is(err, validation.ErrUnknownField):
		return httpErrors.BadRequest("unknown_field", "Unknown field", err)
	case errors.Is(err, route.ErrUnknownAction):
		return httpErrors.BadRequest("action_unavailable", "Action not available on this screen", err)
	default:
		return err
	}
}

// decode reads and validates the request body. It writes the 400 response
// itself and reports false when the handler must stop.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	contextLogger := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		response.RespondCodedError(w, http.StatusBadRequest, "invalid_json", errors.New("invalid request payload"))
		return false
	}
	return h.check(w, r, req)
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	contextLogger := logger.FromContext(r.Context())

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed",
				logger.String("fields", strings.Join(validationErr.Fields(), ",")))
			response.RespondValidation(w, validationErr)
		} else {
			contextLogger.Error("Unexpected validation error", logger.Error(err))
			response.RespondError(w, http.StatusBadRequest, errors.New("invalid request data"))
		}
		return false
	}
	return true
}

func requestEffects(r *http.Request) EffectsView {
	rec := effects.FromContext(r.Context())
	if rec == nil {
		return NewEffectsView(effects.Effects{})
	}
	return NewEffectsView(rec.Effects())
}

func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) error {
	response.RespondJSON(w, http.StatusOK, h.settings)
	return nil
}
