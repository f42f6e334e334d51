package registration

import (
	"errors"
	"fmt"
	"time"

	"onboarding/internal/core/domain/validation"
)

var (
	ErrInvalidID        = errors.New("registration ID cannot be empty")
	ErrTermsNotAccepted = errors.New("terms and conditions were not accepted")
	ErrNotFound         = errors.New("registration not found")
)

type EmailTakenError struct {
	Email string
}

func (e *EmailTakenError) Error() string {
	return fmt.Sprintf("email '%s' is already registered", e.Email)
}

// Registration is the payload handed to the sign-up backend. The password is
// kept in memory only and never serialized.
type Registration struct {
	ID            string    `json:"id"`
	Names         string    `json:"names"`
	Surnames      string    `json:"surnames"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Password      string    `json:"-"`
	TermsAccepted bool      `json:"termsAccepted"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *Registration) GetID() string {
	return r.ID
}

// FromPayload builds a registration out of an accepted registration form
// payload. The payload never carries the password confirmation.
func FromPayload(id string, payload map[validation.Name]validation.Value, now time.Time) (*Registration, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if !payload[validation.FieldTermsAccepted].IsTrue() {
		return nil, ErrTermsNotAccepted
	}
	return &Registration{
		ID:            id,
		Names:         payload[validation.FieldNames].Text(),
		Surnames:      payload[validation.FieldSurnames].Text(),
		Email:         payload[validation.FieldEmail].Text(),
		Phone:         payload[validation.FieldPhone].Text(),
		Password:      payload[validation.FieldPassword].Text(),
		TermsAccepted: true,
		CreatedAt:     now.UTC(),
	}, nil
}
