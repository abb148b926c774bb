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

// Package urlpattern compiles route pattern strings into immutable
// patterns that match URL paths, extract values, and generate URLs.
//
// A pattern is written the way the path looks:
//
//	/movies/:id
//	/studios/:studio.id/movies/:id
//	[/studios/:studio.id]/movies/:id
//	/files/*
//
// # Key Features
//
//   - Segment-based matching with named identifier captures
//   - Dotted key paths producing nested identifier maps
//   - Optional pattern groups for URLs with an omissible prefix
//   - Reverse generation: pattern + values -> URL string
//   - Named route registry with aliases, method scoping, and wrappers
//   - Declarative YAML route tables
//   - OpenTelemetry metrics and trace annotations (opt-in)
//
// # Constructor Pattern
//
// The package follows a pragmatic constructor pattern:
//
//   - New() returns *Registry (no error) because registry initialization
//     cannot fail. The registry is a plain data structure; patterns are
//     validated when they are registered, not when the registry is built.
//
//   - Compile returns an error because pattern text arrives from callers
//     and configuration files and can be malformed. MustCompile panics
//     for patterns known at compile time.
//
//   - NewRecorder returns an error because metrics exporters validate
//     configuration and allocate resources.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "rivaas.dev/urlpattern"
//	)
//
//	func main() {
//	    reg := urlpattern.New()
//	    reg.Register("movie", "/movies/:id")
//	    reg.Register("movies", "/movies")
//
//	    res, err := reg.Resolve(context.Background(), "/movies/473")
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(res.Route.Name(), res.Result.Identifiers["id"])
//
//	    u, _ := res.Route.GenerateURL(urlpattern.Values{"id": 473})
//	    fmt.Println(u) // /movies/473
//	}
//
// # Patterns Without a Registry
//
// Compile and use patterns directly when no named lookup is needed:
//
//	p := urlpattern.MustCompile("/studios/:studio.id/movies/:id")
//	result, ok := p.Match("/studios/20/movies/473")
//	// result.Identifiers = {"studio": {"id": "20"}, "id": "473"}
//
// # Wrappers
//
// A wrapper is a registered pattern fragment that other routes mount
// under. The wrapped portion becomes an optional prefix: the route still
// matches bare, and when the prefix is present the match reports which
// part of the path the wrapper consumed.
//
//	reg.RegisterWrapper("studio", "/studios/:studio.id")
//	reg.Register("movie", "/movies/:id", urlpattern.WithWrapper("studio"))
//
//	res, _ := reg.Resolve(ctx, "/studios/20/movies/473")
//	// res.Result.WrapperPath == "/studios/20"
//
// # Observability
//
// Wire a Recorder to count registrations, matches, generations, and
// resolutions:
//
//	rec, err := urlpattern.NewRecorder(
//	    urlpattern.WithPrometheus(),
//	    urlpattern.WithServiceName("catalog-api"),
//	)
//	reg := urlpattern.New(urlpattern.WithRecorder(rec))
//	http.Handle("/metrics", rec.PrometheusHandler())
//
// Pattern compilation lives in the compiler subpackage; this package
// re-exports the common entry points, so most callers never import it
// directly.
package urlpattern
