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
	"testing"
	"time"
)

// TestingRecorder creates a test [Recorder] with sensible defaults for unit
// tests. The recorder uses [PrometheusProvider] with a private registry, so
// parallel tests never collide, and registers a t.Cleanup shutdown.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    t.Parallel()
//	    recorder := urlpattern.TestingRecorder(t, "test-service")
//	    registry := urlpattern.New(urlpattern.WithRecorder(recorder))
//	    // Use registry...
//	}
func TestingRecorder(t testing.TB, serviceName string, opts ...RecorderOption) *Recorder {
	t.Helper()

	defaultOpts := []RecorderOption{
		WithServiceName(serviceName),
		WithPrometheus(),
	}

	// Test-specific options override defaults.
	allOpts := append(defaultOpts, opts...)

	recorder, err := NewRecorder(allOpts...)
	if err != nil {
		t.Fatalf("TestingRecorder: failed to create recorder: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recorder.Shutdown(ctx); err != nil {
			t.Logf("TestingRecorder: shutdown warning: %v", err)
		}
	})

	return recorder
}

// TestingRegistry creates a [Registry] wired to a [TestingRecorder]. It is
// the quickest way to get an observable registry inside a test.
func TestingRegistry(t testing.TB, serviceName string, opts ...Option) *Registry {
	t.Helper()

	recorder := TestingRecorder(t, serviceName)
	allOpts := append([]Option{WithRecorder(recorder)}, opts...)
	return New(allOpts...)
}
