package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"onboarding/internal/core/domain/registration"
	memoryPlatform "onboarding/internal/platform/repository/memory"
)

// RegistrationRepository stores registrations in process with a unique
// e-mail index. Passwords are dropped before storing.
type RegistrationRepository struct {
	store *memoryPlatform.Repository[*registration.Registration]

	mu     sync.Mutex
	emails map[string]string
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{
		store:  memoryPlatform.New[*registration.Registration](),
		emails: make(map[string]string),
	}
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*registration.Registration, error) {
	reg, err := r.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return nil, registration.ErrNotFound
		}
		return nil, err
	}
	out := *reg
	return &out, nil
}

func (r *RegistrationRepository) Save(ctx context.Context, reg *registration.Registration) error {
	email := strings.ToLower(reg.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.emails[email]; taken {
		return &registration.EmailTakenError{Email: reg.Email}
	}

	stored := *reg
	stored.Password = ""
	if err := r.store.Save(ctx, &stored); err != nil {
		return err
	}

	r.emails[email] = reg.ID
	return nil
}

func (r *RegistrationRepository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx)
}
