package memory

import (
	"context"
	"errors"
	"fmt"

	"onboarding/internal/core/domain/form"
	memoryPlatform "onboarding/internal/platform/repository/memory"
)

// FormRepository keeps form sessions in process. States are copied in and
// out so callers never share maps with the store. Past the capacity the
// oldest session is dropped.
type FormRepository struct {
	*memoryPlatform.Repository[*form.State]
}

func NewFormRepository(capacity int) *FormRepository {
	return &FormRepository{
		Repository: memoryPlatform.New[*form.State](memoryPlatform.WithCapacity(capacity)),
	}
}

func (r *FormRepository) GetByID(ctx context.Context, id string) (*form.State, error) {
	state, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return nil, form.ErrFormNotFound
		}
		return nil, err
	}
	return state.Clone(), nil
}

func (r *FormRepository) Save(ctx context.Context, state *form.State) error {
	err := r.Repository.Save(ctx, state.Clone())
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrAlreadyExists) {
			return fmt.Errorf("form %s: %w", state.ID, err)
		}
		return err
	}
	return nil
}

func (r *FormRepository) Update(ctx context.Context, state *form.State) error {
	err := r.Repository.Update(ctx, state.Clone())
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return form.ErrFormNotFound
		}
		return err
	}
	return nil
}
