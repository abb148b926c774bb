// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package urlpattern

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this package's instruments to the meter provider.
const meterName = "rivaas.dev/urlpattern"

// DefaultDurationBuckets are histogram boundaries, in seconds, for the
// match and resolve duration instruments. Pattern operations are pure
// in-memory computations, so the buckets span microseconds to
// milliseconds rather than the request-latency ranges an HTTP server
// would use.
var DefaultDurationBuckets = []float64{
	0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01,
}

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g., exporter setup failure).
	EventError EventType = iota
	// EventWarning indicates a warning event.
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event.
	EventDebug
)

// Event represents an internal operational event from the observability
// recorder. Events report provider lifecycle details; the pattern engine
// itself is silent.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes internal operational events. Implementations can
// log events, forward them to monitoring systems, or drop them.
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to the
// provided slog.Logger. If logger is nil, it returns a no-op handler.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {}
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}

// Provider represents the available metrics providers.
type Provider string

const (
	// PrometheusProvider exports metrics through a Prometheus registry
	// (default). Mount [Recorder.PrometheusHandler] to scrape them.
	PrometheusProvider Provider = "prometheus"
	// OTLPProvider pushes metrics to an OTLP HTTP collector.
	OTLPProvider Provider = "otlp"
	// StdoutProvider prints metrics to stdout (development/testing).
	StdoutProvider Provider = "stdout"
)

// Recorder holds OpenTelemetry metrics configuration and instruments for
// the pattern engine. All methods are safe for concurrent use, and every
// recording method is a no-op on a nil *Recorder, so an unconfigured
// registry pays nothing.
//
// By default the Recorder does NOT set the global OpenTelemetry meter
// provider; use [WithGlobalMeterProvider] to opt in. This lets multiple
// Recorder instances coexist in one process.
type Recorder struct {
	meter              metric.Meter
	meterProvider      metric.MeterProvider
	prometheusRegistry *promclient.Registry
	prometheusHandler  http.Handler
	eventHandler       EventHandler
	shutdownFunc       func(context.Context) error

	registerCount   metric.Int64Counter
	matchCount      metric.Int64Counter
	matchDuration   metric.Float64Histogram
	generateCount   metric.Int64Counter
	resolveCount    metric.Int64Counter
	resolveDuration metric.Float64Histogram

	durationBuckets []float64
	exportInterval  time.Duration

	serviceName    string
	serviceVersion string
	otlpEndpoint   string

	serviceNameAttr    attribute.KeyValue
	serviceVersionAttr attribute.KeyValue

	provider            Provider
	providerSetCount    int
	enabled             bool
	customMeterProvider bool
	registerGlobal      bool
}

// NewRecorder creates a new [Recorder] with the given options.
//
// Unlike [New], recorder construction can fail: exporters validate their
// configuration and allocate resources, which is why this constructor
// returns an error where the registry's does not.
func NewRecorder(opts ...RecorderOption) (*Recorder, error) {
	rec := newDefaultRecorder()

	for _, opt := range opts {
		opt(rec)
	}

	if err := rec.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := rec.initializeProvider(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return rec, nil
}

// newDefaultRecorder creates a Recorder with default values.
func newDefaultRecorder() *Recorder {
	rec := &Recorder{
		enabled:         true,
		serviceName:     "rivaas-service",
		serviceVersion:  "1.0.0",
		provider:        PrometheusProvider,
		exportInterval:  30 * time.Second,
		durationBuckets: DefaultDurationBuckets,
		eventHandler:    func(Event) {},
	}
	rec.initCommonAttributes()
	return rec
}

// initCommonAttributes pre-computes the attributes attached to every
// measurement.
func (r *Recorder) initCommonAttributes() {
	r.serviceNameAttr = attribute.String("service.name", r.serviceName)
	r.serviceVersionAttr = attribute.String("service.version", r.serviceVersion)
}

// validate checks the applied option set for conflicts.
func (r *Recorder) validate() error {
	if r.providerSetCount > 1 {
		return fmt.Errorf("conflicting providers: only one of WithPrometheus, WithOTLP, and WithStdout may be used")
	}
	if r.exportInterval <= 0 {
		return fmt.Errorf("export interval must be positive, got %s", r.exportInterval)
	}
	if len(r.durationBuckets) == 0 {
		return fmt.Errorf("duration buckets must not be empty")
	}
	return nil
}

// initializeMetrics creates the engine's instruments on the configured
// meter.
func (r *Recorder) initializeMetrics() error {
	var err error

	if r.registerCount, err = r.meter.Int64Counter(
		"urlpattern.register.count",
		metric.WithDescription("Route registrations, including replacements"),
	); err != nil {
		return fmt.Errorf("create register counter: %w", err)
	}

	if r.matchCount, err = r.meter.Int64Counter(
		"urlpattern.match.count",
		metric.WithDescription("Per-route match attempts by outcome"),
	); err != nil {
		return fmt.Errorf("create match counter: %w", err)
	}

	if r.matchDuration, err = r.meter.Float64Histogram(
		"urlpattern.match.duration",
		metric.WithDescription("Per-route match duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	); err != nil {
		return fmt.Errorf("create match histogram: %w", err)
	}

	if r.generateCount, err = r.meter.Int64Counter(
		"urlpattern.generate.count",
		metric.WithDescription("Per-route URL generations by outcome"),
	); err != nil {
		return fmt.Errorf("create generate counter: %w", err)
	}

	if r.resolveCount, err = r.meter.Int64Counter(
		"urlpattern.resolve.count",
		metric.WithDescription("Registry resolutions by outcome"),
	); err != nil {
		return fmt.Errorf("create resolve counter: %w", err)
	}

	if r.resolveDuration, err = r.meter.Float64Histogram(
		"urlpattern.resolve.duration",
		metric.WithDescription("Registry resolution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	); err != nil {
		return fmt.Errorf("create resolve histogram: %w", err)
	}

	return nil
}

// PrometheusHandler returns the scrape handler for the recorder's
// Prometheus registry, or nil for non-Prometheus providers. The engine
// owns no HTTP surface; mount the handler wherever the host serves
// metrics.
func (r *Recorder) PrometheusHandler() http.Handler {
	if r == nil {
		return nil
	}
	return r.prometheusHandler
}

// MeterProvider returns the recorder's meter provider.
func (r *Recorder) MeterProvider() metric.MeterProvider {
	return r.meterProvider
}

// Shutdown flushes pending measurements and releases exporter resources.
// It is a no-op for recorders built on a caller-supplied meter provider,
// whose lifecycle belongs to the caller.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.shutdownFunc == nil {
		return nil
	}
	return r.shutdownFunc(ctx)
}

// recordRegister records one route registration.
func (r *Recorder) recordRegister(patterns int) {
	if r == nil || !r.enabled {
		return
	}
	r.registerCount.Add(context.Background(), 1, metric.WithAttributes(
		r.serviceNameAttr,
		r.serviceVersionAttr,
		attribute.Int("patterns", patterns),
	))
}

// recordMatch records one per-route match attempt.
func (r *Recorder) recordMatch(route string, hit bool, d time.Duration) {
	if r == nil || !r.enabled {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	ctx := context.Background()
	attrs := metric.WithAttributes(
		r.serviceNameAttr,
		r.serviceVersionAttr,
		attribute.String("route", route),
		attribute.String("outcome", outcome),
	)
	r.matchCount.Add(ctx, 1, attrs)
	r.matchDuration.Record(ctx, d.Seconds(), attrs)
}

// recordGenerate records one per-route URL generation.
func (r *Recorder) recordGenerate(route string, ok bool) {
	if r == nil || !r.enabled {
		return
	}
	outcome := "error"
	if ok {
		outcome = "ok"
	}
	r.generateCount.Add(context.Background(), 1, metric.WithAttributes(
		r.serviceNameAttr,
		r.serviceVersionAttr,
		attribute.String("route", route),
		attribute.String("outcome", outcome),
	))
}

// recordResolve records one registry resolution. A nil resolution means
// no route matched.
func (r *Recorder) recordResolve(ctx context.Context, resolution *Resolution, d time.Duration) {
	if r == nil || !r.enabled {
		return
	}
	attrs := []attribute.KeyValue{
		r.serviceNameAttr,
		r.serviceVersionAttr,
	}
	if resolution != nil {
		attrs = append(attrs,
			attribute.String("outcome", "matched"),
			attribute.String("route", resolution.Route.Name()),
		)
	} else {
		attrs = append(attrs, attribute.String("outcome", "not_found"))
	}
	set := metric.WithAttributes(attrs...)
	r.resolveCount.Add(ctx, 1, set)
	r.resolveDuration.Record(ctx, d.Seconds(), set)
}

// emit dispatches an operational event to the configured handler.
func (r *Recorder) emit(t EventType, msg string, args ...any) {
	if r.eventHandler != nil {
		r.eventHandler(Event{Type: t, Message: msg, Args: args})
	}
}

func (r *Recorder) emitDebug(msg string, args ...any) { r.emit(EventDebug, msg, args...) }
func (r *Recorder) emitError(msg string, args ...any) { r.emit(EventError, msg, args...) }
