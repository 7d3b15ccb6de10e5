// Package metrics records count results as OpenTelemetry instruments exported
// through a Prometheus registry.
package metrics

import (
	"context"
	"fmt"
	"primecount/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "primecount"

// Metrics holds the instruments for count results and the registry they are
// exported to.
type Metrics struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider

	candidates metric.Int64Counter
	primes     metric.Int64Counter
	duration   metric.Float64Histogram
}

// New creates a meter provider backed by a private Prometheus registry and
// registers the count instruments on it.
func New() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := provider.Meter(meterName)

	m := &Metrics{registry: registry, provider: provider}

	// underscored names keep the classic text format the textfile collector reads
	if m.candidates, err = meter.Int64Counter("primecount_candidates",
		metric.WithDescription("Number of candidates checked for primality.")); err != nil {
		return nil, fmt.Errorf("could not create candidates counter: %w", err)
	}
	if m.primes, err = meter.Int64Counter("primecount_primes",
		metric.WithDescription("Number of candidates classified as prime.")); err != nil {
		return nil, fmt.Errorf("could not create primes counter: %w", err)
	}
	if m.duration, err = meter.Float64Histogram("primecount_count_duration",
		metric.WithDescription("Wall time of a single range count."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return m, nil
}

// RecordCount adds a finished count to the instruments.
func (m *Metrics) RecordCount(ctx context.Context, res domain.CountResult) {
	m.candidates.Add(ctx, res.Candidates)
	m.primes.Add(ctx, res.Primes)
	m.duration.Record(ctx, res.Elapsed.Seconds())
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the current metrics to path in the Prometheus text
// format. The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if err := m.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shut down meter provider: %w", err)
	}

	return nil
}
