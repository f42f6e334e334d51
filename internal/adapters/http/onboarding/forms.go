package onboarding

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboarding/internal/adapters/http/response"
	"onboarding/internal/adapters/i18n"
	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/validation"
)

type StartFormRequest struct {
	Kind string `json:"kind" validate:"required,formkind"`
}

func (h *Handler) StartForm(w http.ResponseWriter, r *http.Request) error {
	var req StartFormRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	kind, err := form.ParseKind(req.Kind)
	if err != nil {
		return h.mapDomainError(err)
	}

	state, err := h.manager.StartForm(r.Context(), kind, i18n.LocaleFromContext(r.Context()))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusCreated, NewFormView(state))
	return nil
}

func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) error {
	state, err := h.manager.GetForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, NewFormView(state))
	return nil
}

type ChangeFieldRequest struct {
	Field string           `json:"field" validate:"required,fieldname"`
	Value validation.Value `json:"value"`
}

func (h *Handler) ChangeField(w http.ResponseWriter, r *http.Request) error {
	var req ChangeFieldRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	field, err := validation.ParseName(req.Field)
	if err != nil {
		return h.mapDomainError(err)
	}

	state, err := h.manager.ChangeField(r.Context(), chi.URLParam(r, "id"), field, req.Value)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, NewFormView(state))
	return nil
}

type ToggleVisibilityRequest struct {
	Confirmation bool `json:"confirmation"`
}

func (h *Handler) ToggleVisibility(w http.ResponseWriter, r *http.Request) error {
	var req ToggleVisibilityRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	state, err := h.manager.TogglePasswordVisibility(r.Context(), chi.URLParam(r, "id"), req.Confirmation)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, NewFormView(state))
	return nil
}

func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) error {
	state, accepted, err := h.manager.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, SubmitResponse{
		Accepted: accepted,
		Form:     NewFormView(state),
		Effects:  requestEffects(r),
	})
	return nil
}
