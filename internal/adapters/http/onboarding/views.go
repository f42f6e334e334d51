package onboarding

import (
	"onboarding/internal/adapters/effects"
	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/validation"
)

type FieldView struct {
	Name    string            `json:"name"`
	Value   *validation.Value `json:"value,omitempty"`
	Touched bool              `json:"touched"`
	Error   string            `json:"error,omitempty"`
}

type FormView struct {
	ID                  string      `json:"id"`
	Kind                string      `json:"kind"`
	Locale              string      `json:"locale"`
	Submitted           bool        `json:"submitted"`
	PasswordVisible     bool        `json:"passwordVisible"`
	ConfirmationVisible bool        `json:"confirmationVisible"`
	Fields              []FieldView `json:"fields"`
}

func isSecret(field validation.Name) bool {
	return field == validation.FieldPassword || field == validation.FieldPasswordConfirmation
}

// NewFormView renders the state in field order. Password values are never
// echoed and errors only show once the field may display them.
func NewFormView(s *form.State) FormView {
	fields := s.Kind.Fields()
	view := FormView{
		ID:                  s.ID,
		Kind:                string(s.Kind),
		Locale:              s.Locale,
		Submitted:           s.Submitted,
		PasswordVisible:     s.PasswordVisible,
		ConfirmationVisible: s.ConfirmationVisible,
		Fields:              make([]FieldView, 0, len(fields)),
	}
	for _, field := range fields {
		fv := FieldView{
			Name:    field.String(),
			Touched: s.Touched[field],
			Error:   s.DisplayedError(field),
		}
		if !isSecret(field) {
			value := s.Values[field]
			fv.Value = &value
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}

type ToastView struct {
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	DurationMs int64  `json:"durationMs"`
	Position   string `json:"position"`
}

type NavigationView struct {
	To     string `json:"to,omitempty"`
	Screen string `json:"screen,omitempty"`
	Back   bool   `json:"back"`
}

type EffectsView struct {
	Toasts     []ToastView     `json:"toasts"`
	Navigation *NavigationView `json:"navigation,omitempty"`
}

func NewEffectsView(e effects.Effects) EffectsView {
	view := EffectsView{Toasts: make([]ToastView, 0, len(e.Toasts))}
	for _, t := range e.Toasts {
		view.Toasts = append(view.Toasts, ToastView{
			Severity:   string(t.Severity),
			Message:    t.Message,
			DurationMs: t.DurationMillis(),
			Position:   string(t.Position),
		})
	}
	if nav := e.Navigation; nav != nil {
		view.Navigation = &NavigationView{
			To:     nav.To.String(),
			Screen: string(nav.To.Screen()),
			Back:   nav.Back,
		}
	}
	return view
}

type SubmitResponse struct {
	Accepted bool        `json:"accepted"`
	Form     FormView    `json:"form"`
	Effects  EffectsView `json:"effects"`
}

type ActionResponse struct {
	Effects EffectsView `json:"effects"`
}

type RouteResponse struct {
	Path   string `json:"path"`
	Screen string `json:"screen"`
}

type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Settings are the client-facing knobs of the flow.
type Settings struct {
	Locales           []string `json:"locales"`
	DefaultLocale     string   `json:"defaultLocale"`
	SplashDelayMs     int64    `json:"splashDelayMs"`
	PhoneDigits       int      `json:"phoneDigits"`
	PasswordMinLength int      `json:"passwordMinLength"`
	ToastPosition     string   `json:"toastPosition"`
}
