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
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// RecorderOption defines functional options for [Recorder] configuration.
type RecorderOption func(*Recorder)

// WithMeterProvider provides a custom OpenTelemetry [metric.MeterProvider].
// When using this option, the recorder will NOT set the global
// otel.SetMeterProvider() by default; use [WithGlobalMeterProvider] for
// global registration.
//
// This is useful when:
//   - You want to manage the meter provider lifecycle yourself
//   - You need multiple independent metrics configurations
//   - You want to avoid global state in your application
//
// Example:
//
//	mp := sdkmetric.NewMeterProvider(...)
//	rec, err := urlpattern.NewRecorder(
//	    urlpattern.WithMeterProvider(mp),
//	    urlpattern.WithServiceName("catalog-api"),
//	)
//	defer mp.Shutdown(context.Background())
//
// Note: When using WithMeterProvider, provider options ([WithPrometheus],
// [WithOTLP], etc.) are ignored since you're managing the provider yourself.
func WithMeterProvider(provider metric.MeterProvider) RecorderOption {
	return func(r *Recorder) {
		r.meterProvider = provider
		r.customMeterProvider = true
		// registerGlobal stays false unless explicitly set
	}
}

// WithGlobalMeterProvider registers the meter provider as the global
// OpenTelemetry meter provider via otel.SetMeterProvider().
// By default, meter providers are not registered globally so that multiple
// recorders can coexist in the same process.
func WithGlobalMeterProvider() RecorderOption {
	return func(r *Recorder) {
		r.registerGlobal = true
	}
}

// WithServiceName sets the service name attached to every measurement.
func WithServiceName(name string) RecorderOption {
	return func(r *Recorder) {
		r.serviceName = name
		r.initCommonAttributes()
	}
}

// WithServiceVersion sets the service version attached to every measurement.
func WithServiceVersion(version string) RecorderOption {
	return func(r *Recorder) {
		r.serviceVersion = version
		r.initCommonAttributes()
	}
}

// WithExportInterval sets the export interval for OTLP and stdout metrics.
func WithExportInterval(interval time.Duration) RecorderOption {
	return func(r *Recorder) {
		r.exportInterval = interval
	}
}

// WithDurationBuckets sets custom histogram bucket boundaries for the match
// and resolve duration instruments. Buckets are specified in seconds. If
// not set, [DefaultDurationBuckets] is used.
func WithDurationBuckets(buckets ...float64) RecorderOption {
	return func(r *Recorder) {
		r.durationBuckets = buckets
	}
}

// WithEventHandler sets a custom [EventHandler] for internal operational
// events. Use this for advanced use cases like custom alerting or
// integrating with non-slog logging systems.
//
// Example:
//
//	urlpattern.NewRecorder(urlpattern.WithEventHandler(func(e urlpattern.Event) {
//	    if e.Type == urlpattern.EventError {
//	        sentry.CaptureMessage(e.Message)
//	    }
//	}))
func WithEventHandler(handler EventHandler) RecorderOption {
	return func(r *Recorder) {
		r.eventHandler = handler
	}
}

// WithLogger sets the logger for internal operational events using the
// default event handler. This is a convenience wrapper around
// [WithEventHandler] that logs events to the provided [slog.Logger].
func WithLogger(logger *slog.Logger) RecorderOption {
	return WithEventHandler(DefaultEventHandler(logger))
}

// WithPrometheus selects the Prometheus provider. Scrape the metrics by
// mounting [Recorder.PrometheusHandler] on the host's HTTP mux.
//
// Example:
//
//	rec, err := urlpattern.NewRecorder(
//	    urlpattern.WithPrometheus(),
//	    urlpattern.WithServiceName("catalog-api"),
//	)
//	http.Handle("/metrics", rec.PrometheusHandler())
func WithPrometheus() RecorderOption {
	return func(r *Recorder) {
		r.provider = PrometheusProvider
		r.providerSetCount++
	}
}

// WithOTLP selects the OTLP HTTP provider pushing to endpoint.
//
// Example:
//
//	rec, err := urlpattern.NewRecorder(
//	    urlpattern.WithOTLP("http://localhost:4318"),
//	    urlpattern.WithServiceName("catalog-api"),
//	)
func WithOTLP(endpoint string) RecorderOption {
	return func(r *Recorder) {
		r.provider = OTLPProvider
		r.providerSetCount++
		r.otlpEndpoint = endpoint
	}
}

// WithStdout selects the stdout provider for development and debugging.
//
// Example:
//
//	rec, err := urlpattern.NewRecorder(
//	    urlpattern.WithStdout(),
//	    urlpattern.WithExportInterval(time.Second),
//	)
func WithStdout() RecorderOption {
	return func(r *Recorder) {
		r.provider = StdoutProvider
		r.providerSetCount++
	}
}
