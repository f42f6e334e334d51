package effects

import (
	"context"
	"net/http"
	"sync"

	"onboarding/internal/core/domain/notification"
	"onboarding/internal/core/domain/route"
)

// Effects is what the client has to do after an interaction: show the toasts
// in order, then follow the navigation if any.
type Effects struct {
	Toasts     []notification.Toast
	Navigation *Navigation
}

type Navigation struct {
	To   route.Path
	Back bool
}

// Recorder collects the effects produced while serving one request.
type Recorder struct {
	mu         sync.Mutex
	toasts     []notification.Toast
	navigation *Navigation
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AddToast(toast notification.Toast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, toast)
}

// SetNavigation keeps the last navigation request only.
func (r *Recorder) SetNavigation(nav Navigation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigation = &nav
}

func (r *Recorder) Effects() Effects {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Effects{Toasts: make([]notification.Toast, len(r.toasts))}
	copy(out.Toasts, r.toasts)
	if r.navigation != nil {
		nav := *r.navigation
		out.Navigation = &nav
	}
	return out
}

type recorderKey struct{}

func WithRecorder(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, recorderKey{}, r)
}

// FromContext returns the request recorder, or nil outside a request.
func FromContext(ctx context.Context) *Recorder {
	if r, ok := ctx.Value(recorderKey{}).(*Recorder); ok {
		return r
	}
	return nil
}

// Middleware attaches a fresh recorder to every request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithRecorder(r.Context(), NewRecorder())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
