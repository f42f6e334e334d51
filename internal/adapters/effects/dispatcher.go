package effects

import (
	"context"

	"onboarding/internal/core/domain/notification"
	"onboarding/internal/core/domain/route"
	"onboarding/internal/platform/logger"
)

// Dispatcher implements the Notifier and Navigator ports by writing to the
// recorder of the current request.
type Dispatcher struct{}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Notify(ctx context.Context, toast notification.Toast) {
	logger.FromContext(ctx).Debug("Toast",
		logger.String("severity", string(toast.Severity)),
		logger.String("message", toast.Message),
		logger.Duration("duration", toast.Duration))

	if r := FromContext(ctx); r != nil {
		r.AddToast(toast)
	}
}

func (d *Dispatcher) Navigate(ctx context.Context, to route.Path) {
	logger.FromContext(ctx).Debug("Navigate", logger.String("to", to.String()))

	if r := FromContext(ctx); r != nil {
		r.SetNavigation(Navigation{To: to})
	}
}

func (d *Dispatcher) Back(ctx context.Context) {
	logger.FromContext(ctx).Debug("Navigate back")

	if r := FromContext(ctx); r != nil {
		r.SetNavigation(Navigation{Back: true})
	}
}
