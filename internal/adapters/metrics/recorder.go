package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"onboarding/internal/core/domain/form"
	"onboarding/internal/core/domain/validation"
	platformMetrics "onboarding/internal/platform/metrics"
)

// Recorder counts form submissions and standalone field checks.
type Recorder struct {
	provider *platformMetrics.Provider
}

func NewRecorder(provider *platformMetrics.Provider) *Recorder {
	return &Recorder{provider: provider}
}

func (r *Recorder) RecordSubmission(ctx context.Context, kind form.Kind, accepted bool, field validation.Name) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	r.provider.FormSubmissions.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("form", string(kind)),
			attribute.String("outcome", outcome),
			attribute.String("field", field.String()),
		),
	)
}

func (r *Recorder) RecordFieldCheck(ctx context.Context, field validation.Name, kind validation.Kind) {
	r.provider.FieldChecks.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("field", field.String()),
			attribute.String("result", kind.String()),
		),
	)
}
