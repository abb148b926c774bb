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

// Option configures a [Registry] at construction time.
type Option func(*Registry)

// WithRecorder attaches an observability [Recorder] to the registry.
// Registration, matching, generation, and resolution record through it.
//
// Example:
//
//	rec, err := urlpattern.NewRecorder(urlpattern.WithPrometheus())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg := urlpattern.New(urlpattern.WithRecorder(rec))
func WithRecorder(rec *Recorder) Option {
	return func(r *Registry) {
		r.recorder = rec
	}
}

// RegisterOption configures a single Register or RegisterWrapper call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	method  string
	aliases []string
	handler any
	wrapper string
	parent  string
}

// WithAliases adds alias pattern strings to a route. Aliases are parsed
// exactly like the canonical pattern and share the route's name; during
// resolution they are tried after the canonical pattern, in declaration
// order.
func WithAliases(patterns ...string) RegisterOption {
	return func(c *registerConfig) {
		c.aliases = append(c.aliases, patterns...)
	}
}

// WithMethod scopes a route to one HTTP method. The default is
// [MethodAny], which matches any method and is tried only after all
// method-scoped entries.
func WithMethod(method string) RegisterOption {
	return func(c *registerConfig) {
		c.method = method
	}
}

// WithHandler attaches a caller-owned handler to the route. The registry
// never inspects it; retrieve it from a [Resolution] via Route.Handler.
func WithHandler(handler any) RegisterOption {
	return func(c *registerConfig) {
		c.handler = handler
	}
}

// WithWrapper registers the route under a named wrapper. The wrapper's
// effective pattern is composed around the route's patterns as an
// optional prefix group, so the route matches both its wrapped and bare
// URL forms, and a matched wrapped form reports its WrapperPath.
func WithWrapper(name string) RegisterOption {
	return func(c *registerConfig) {
		c.wrapper = name
	}
}

// WithParent nests a wrapper under an existing wrapper. Valid only for
// [Registry.RegisterWrapper].
func WithParent(name string) RegisterOption {
	return func(c *registerConfig) {
		c.parent = name
	}
}

// ResolveOption configures a single Resolve call.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	method string
}

// WithResolveMethod supplies the HTTP method of the URL being resolved.
// Method-scoped routes then require equality; without this option the
// method check is skipped entirely.
func WithResolveMethod(method string) ResolveOption {
	return func(c *resolveConfig) {
		c.method = method
	}
}
