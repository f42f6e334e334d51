package health

import (
	"context"
	"fmt"

	"onboarding/internal/platform/health"
)

// RegistrationCounter reports how many registrations a store holds.
type RegistrationCounter interface {
	Count(ctx context.Context) (int, error)
}

// MemoryChecker confirms the in-process registration store still answers.
type MemoryChecker struct {
	store RegistrationCounter
}

func NewMemoryChecker(store RegistrationCounter) *MemoryChecker {
	return &MemoryChecker{store: store}
}

func (c *MemoryChecker) Name() string {
	return "memory_storage"
}

func (c *MemoryChecker) Check(ctx context.Context) health.CheckResult {
	if err := ctx.Err(); err != nil {
		return unhealthy("memory storage check cancelled", err)
	}

	n, err := c.store.Count(ctx)
	if err != nil {
		return unhealthy("memory storage unavailable", err)
	}
	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("memory storage operational, %d registrations", n),
	}
}

func unhealthy(message string, err error) health.CheckResult {
	return health.CheckResult{Status: health.StatusUnhealthy, Message: message, Error: err.Error()}
}
