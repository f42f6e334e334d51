package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "onboarding"

// Request latencies for the form API sit well under a second.
var latencyBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Provider exposes the service instruments through a private Prometheus
// registry.
type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter
	FormSubmissions  metric.Int64Counter
	FieldChecks      metric.Int64Counter

	registry      *prometheus.Registry
	meterProvider *sdkmetric.MeterProvider
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(meterProvider)

	p := &Provider{registry: registry, meterProvider: meterProvider}
	if err := p.instrument(meterProvider.Meter(meterName)); err != nil {
		return nil, fmt.Errorf("create instruments: %w", err)
	}
	return p, nil
}

func (p *Provider) instrument(meter metric.Meter) error {
	var errs []error
	keep := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	p.RequestsTotal, err = meter.Int64Counter("http_requests",
		metric.WithDescription("HTTP requests served, by route and status"))
	keep(err)

	p.RequestDuration, err = meter.Float64Histogram("http_request_duration",
		metric.WithDescription("Time spent serving an HTTP request"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...))
	keep(err)

	p.RequestsInFlight, err = meter.Int64UpDownCounter("http_requests_in_flight",
		metric.WithDescription("HTTP requests currently being served"))
	keep(err)

	p.FormSubmissions, err = meter.Int64Counter("onboarding_form_submissions",
		metric.WithDescription("Form submit attempts by form kind, outcome and first invalid field"))
	keep(err)

	p.FieldChecks, err = meter.Int64Counter("onboarding_field_checks",
		metric.WithDescription("Standalone field validations by field and outcome kind"))
	keep(err)

	return errors.Join(errs...)
}

// Handler serves the registry in the Prometheus text format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// Shutdown stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.meterProvider.Shutdown(ctx)
}
