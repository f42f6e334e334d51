package onboarding

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboarding/internal/adapters/http/response"
	"onboarding/internal/adapters/i18n"
	"onboarding/internal/core/domain/route"
	"onboarding/internal/core/domain/validation"
)

// ResolveRoute maps ?path= to the screen that renders it.
func (h *Handler) ResolveRoute(w http.ResponseWriter, r *http.Request) error {
	p := route.Resolve(r.URL.Query().Get("path"))

	response.RespondJSON(w, http.StatusOK, RouteResponse{
		Path:   p.String(),
		Screen: string(p.Screen()),
	})
	return nil
}

type PerformActionRequest struct {
	Screen string `json:"screen" validate:"required,screen"`
	Action string `json:"action" validate:"required,action"`
}

func (h *Handler) PerformAction(w http.ResponseWriter, r *http.Request) error {
	req := PerformActionRequest{
		Screen: chi.URLParam(r, "screen"),
		Action: chi.URLParam(r, "action"),
	}
	if !h.check(w, r, req) {
		return nil
	}

	if err := h.manager.Perform(r.Context(), route.Screen(req.Screen), route.Action(req.Action)); err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, ActionResponse{Effects: requestEffects(r)})
	return nil
}

type ValidateRequest struct {
	Field   string              `json:"field" validate:"required,fieldname"`
	Value   validation.Value    `json:"value"`
	Context *validation.Context `json:"context,omitempty"`
}

// Validate runs the bare field validator, outside of any form.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	var req ValidateRequest
	if !h.decode(w, r, &req) {
		return nil
	}

	field, err := validation.ParseName(req.Field)
	if err != nil {
		return h.mapDomainError(err)
	}

	kind, msg := h.manager.ValidateField(r.Context(), i18n.LocaleFromContext(r.Context()), field, req.Value, req.Context)

	response.RespondJSON(w, http.StatusOK, ValidateResponse{
		Valid:   msg == "",
		Kind:    kind.String(),
		Message: msg,
	})
	return nil
}
