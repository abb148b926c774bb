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
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Registry associates names with compiled route and wrapper patterns and
// resolves URLs against the full registered set.
//
// Registration is a configuration-phase operation: it mutates the entry
// list and is not synchronized, matching the expectation that routes are
// registered once at startup by a single goroutine. After registration,
// Resolve and the per-route helpers only read immutable compiled state
// and are safe for arbitrary concurrent use.
type Registry struct {
	routes   []*Route
	byName   map[string]*Route
	wrappers map[string]*Wrapper
	recorder *Recorder
}

// Resolution is a successful URL resolution: the winning route and the
// values its pattern extracted.
type Resolution struct {
	Route  *Route
	Result *MatchResult
}

// New creates an empty Registry. New never fails: the registry is a
// plain data structure, and all validation happens at registration time.
func New(opts ...Option) *Registry {
	r := &Registry{
		byName:   make(map[string]*Route),
		wrappers: make(map[string]*Wrapper),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register compiles the pattern (and any aliases) and adds the route
// under the given name. Registering a name twice replaces the previous
// entry in place, keeping its position in resolution order.
//
// Example:
//
//	movie, err := reg.Register("movie", "/movies/:id",
//	    urlpattern.WithMethod("GET"),
//	    urlpattern.WithAliases("/films/:id"),
//	    urlpattern.WithWrapper("studio"),
//	)
func (r *Registry) Register(name, pattern string, opts ...RegisterOption) (*Route, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}

	cfg := registerConfig{method: MethodAny}
	for _, opt := range opts {
		opt(&cfg)
	}

	var wrapper *Wrapper
	if cfg.wrapper != "" {
		wrapper = r.wrappers[cfg.wrapper]
		if wrapper == nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownWrapper, cfg.wrapper)
		}
	}

	sources := append([]string{pattern}, cfg.aliases...)
	patterns := make([]*Pattern, 0, len(sources))
	for _, src := range sources {
		compiled, err := r.compileRouteSource(src, wrapper)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, compiled)
	}

	route := &Route{
		name:     name,
		method:   cfg.method,
		handler:  cfg.handler,
		patterns: patterns,
		wrapper:  wrapper,
		recorder: r.recorder,
	}

	if prev, ok := r.byName[name]; ok {
		for i, existing := range r.routes {
			if existing == prev {
				r.routes[i] = route
				break
			}
		}
	} else {
		r.routes = append(r.routes, route)
	}
	r.byName[name] = route
	r.recorder.recordRegister(len(patterns))

	return route, nil
}

// compileRouteSource compiles one route pattern source, composing the
// wrapper's effective pattern around it when the route is wrapped.
func (r *Registry) compileRouteSource(src string, wrapper *Wrapper) (*Pattern, error) {
	if wrapper == nil {
		return compile(src, false)
	}
	return compile(composeSource(wrapper.effective, src), true)
}

// RegisterWrapper compiles the pattern and adds a wrapper under the given
// name. Use [WithParent] to nest the wrapper under an existing one; the
// parent chain becomes an optional prefix of the wrapper's effective
// pattern. Re-registration by name replaces the wrapper; routes already
// registered under it keep their previously composed patterns.
func (r *Registry) RegisterWrapper(name, pattern string, opts ...RegisterOption) (*Wrapper, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}

	cfg := registerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &Wrapper{name: name, source: pattern, effective: pattern}
	if cfg.parent != "" {
		parent := r.wrappers[cfg.parent]
		if parent == nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownParent, cfg.parent)
		}
		w.parent = parent
		w.effective = composeSource(parent.effective, pattern)
	}

	compiled, err := compile(w.effective, w.parent != nil)
	if err != nil {
		return nil, err
	}
	w.pattern = compiled

	r.wrappers[name] = w
	return w, nil
}

// Route returns the route registered under name, or nil.
func (r *Registry) Route(name string) *Route {
	return r.byName[name]
}

// Routes returns the registered routes in resolution order.
// The returned slice is a copy.
func (r *Registry) Routes() []*Route {
	out := make([]*Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Wrapper returns the wrapper registered under name, or nil.
func (r *Registry) Wrapper(name string) *Wrapper {
	return r.wrappers[name]
}

// Wrappers returns the registered wrappers keyed by name.
// The returned map is a copy.
func (r *Registry) Wrappers() map[string]*Wrapper {
	out := make(map[string]*Wrapper, len(r.wrappers))
	for name, w := range r.wrappers {
		out[name] = w
	}
	return out
}

// Resolve matches a URL against the registered routes and returns the
// first hit.
//
// The URL's fragment is ignored and its query string is parsed into the
// match's Params. Entries are tried in registration order, except that
// [MethodAny] entries are tried only after every method-scoped entry has
// failed, and catch-all entries (pattern "/*") are tried only after every
// other entry has failed. Within a route, the canonical pattern is tried
// before its aliases and the first structural match wins.
//
// When no entry matches, Resolve returns [ErrRouteNotFound]. The registry
// reports the miss and nothing more: mapping it to a user-visible outcome
// is the host's concern.
func (r *Registry) Resolve(ctx context.Context, rawURL string, opts ...ResolveOption) (*Resolution, error) {
	cfg := resolveConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	path, query := splitURL(rawURL)

	resolution := r.resolve(path, query, cfg.method)

	r.recorder.recordResolve(ctx, resolution, time.Since(start))
	annotateSpan(ctx, rawURL, resolution)

	if resolution == nil {
		return nil, fmt.Errorf("%w: %q", ErrRouteNotFound, rawURL)
	}
	return resolution, nil
}

// resolve walks the entries in tiers, registration order within each:
// method-scoped entries first, then [MethodAny] entries, with catch-all
// pattern entries (every pattern a bare wildcard) deferred behind both so
// a `/*` fallback can never shadow a more specific route.
func (r *Registry) resolve(path string, query url.Values, method string) *Resolution {
	for pass := range 4 {
		for _, route := range r.routes {
			if route.tier() != pass {
				continue
			}
			if route.method != MethodAny && method != "" && route.method != method {
				continue
			}
			if result, ok := route.matchURL(path, query); ok {
				return &Resolution{Route: route, Result: result}
			}
		}
	}
	return nil
}

// splitURL separates a URL into its path and parsed query, dropping the
// fragment. Malformed query strings degrade to an empty mapping rather
// than failing resolution.
func splitURL(rawURL string) (string, url.Values) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, nil
	}
	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		query = nil
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return path, query
}

// annotateSpan records the resolution outcome on the caller's trace span,
// if one is recording. The route name, not the raw URL path, is used as
// the low-cardinality attribute.
func annotateSpan(ctx context.Context, rawURL string, resolution *Resolution) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("urlpattern.matched", resolution != nil),
	}
	if resolution != nil {
		attrs = append(attrs, attribute.String("urlpattern.route", resolution.Route.Name()))
	} else {
		attrs = append(attrs, attribute.String("urlpattern.url", rawURL))
	}
	span.AddEvent("urlpattern.resolve", trace.WithAttributes(attrs...))
}
