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
	"net/url"
	"time"
)

// MethodAny is the wildcard method. Routes registered with it match any
// resolve method, and are tried only after every method-scoped route has
// failed, acting as catch-all entries.
const MethodAny = "*"

// Route is the handle returned by [Registry.Register]. It bundles the
// route's name, its compiled canonical and alias patterns, and the
// caller-owned handler, and carries the navigation helpers computed at
// registration time.
//
// A Route is immutable after registration and safe for concurrent use.
type Route struct {
	name     string
	method   string
	handler  any
	patterns []*Pattern // canonical first, aliases after, in declaration order
	wrapper  *Wrapper
	recorder *Recorder
}

// Name returns the route's registry-unique name.
func (r *Route) Name() string {
	return r.name
}

// Method returns the HTTP method the route is scoped to, or [MethodAny].
func (r *Route) Method() string {
	return r.method
}

// Handler returns the opaque handler supplied at registration, or nil.
func (r *Route) Handler() any {
	return r.handler
}

// Pattern returns the compiled canonical pattern.
func (r *Route) Pattern() *Pattern {
	return r.patterns[0]
}

// Aliases returns the compiled alias patterns in declaration order.
func (r *Route) Aliases() []*Pattern {
	return r.patterns[1:]
}

// Wrapper returns the wrapper the route was registered under, or nil.
func (r *Route) Wrapper() *Wrapper {
	return r.wrapper
}

// MatchURL tests the route's patterns against a URL path: the canonical
// pattern first, then each alias in declaration order. The first
// structural match wins; no preference is given to more specific
// patterns.
func (r *Route) MatchURL(path string) (*MatchResult, bool) {
	return r.matchURL(path, nil)
}

func (r *Route) matchURL(path string, query url.Values) (*MatchResult, bool) {
	start := time.Now()
	for _, p := range r.patterns {
		if result, ok := p.MatchQuery(path, query); ok {
			r.recorder.recordMatch(r.name, true, time.Since(start))
			return result, true
		}
	}
	r.recorder.recordMatch(r.name, false, time.Since(start))
	return nil, false
}

// tier orders routes for resolution. Method-scoped routes run before
// [MethodAny] routes, and catch-all routes run after everything else.
func (r *Route) tier() int {
	t := 0
	if r.method == MethodAny {
		t = 1
	}
	if r.catchAll() {
		t += 2
	}
	return t
}

// catchAll reports whether every pattern of the route is a bare wildcard.
func (r *Route) catchAll() bool {
	for _, p := range r.patterns {
		if !p.wildcardOnly {
			return false
		}
	}
	return true
}

// GenerateURL renders a concrete URL from the canonical pattern.
// Values scoped to the route's wrapper may be included to generate the
// wrapped form, or left out to generate the bare route path.
func (r *Route) GenerateURL(values Values, opts ...GenerateOption) (string, error) {
	path, err := r.patterns[0].Generate(values, opts...)
	r.recorder.recordGenerate(r.name, err == nil)
	return path, err
}
