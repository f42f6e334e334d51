package memory

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var (
	ErrNotFound      = errors.New("memory: no entry with that id")
	ErrAlreadyExists = errors.New("memory: id already stored")
)

type Entity interface {
	GetID() string
}

// Repository is a map-backed store. With a capacity it evicts the oldest
// saved entity to make room for a new one.
type Repository[T Entity] struct {
	data     map[string]T
	order    []string
	capacity int
	mu       sync.RWMutex
}

type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity bounds the number of stored entities. Zero means unbounded.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func New[T Entity](opts ...Option) *Repository[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Repository[T]{
		data:     make(map[string]T),
		capacity: cfg.capacity,
	}
}

func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; exists {
		return ErrAlreadyExists
	}

	if r.capacity > 0 && len(r.data) >= r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.data, oldest)
	}

	r.data[id] = entity
	r.order = append(r.order, id)
	return nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	entity, exists := r.data[id]
	if !exists {
		return zero, ErrNotFound
	}

	return entity, nil
}

func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; !exists {
		return ErrNotFound
	}

	r.data[id] = entity
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return ErrNotFound
	}

	delete(r.data, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]T, 0, len(r.data))
	for _, id := range r.order {
		entities = append(entities, r.data[id])
	}

	return entities, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.data), nil
}
