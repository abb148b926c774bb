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
	"rivaas.dev/urlpattern/compiler"
)

// segKind mirrors compiler.Kind for the matcher's internal representation.
type segKind uint8

const (
	segLiteral segKind = iota
	segIdentifier
	segWildcard
	segGroup
)

// segment is the matcher/generator-side form of a compiled pattern
// segment. Query params are split out of the sequence at construction, and
// the group carrying a wrapper prefix is flagged so matching can report
// the consumed WrapperPath.
type segment struct {
	kind    segKind
	text    string   // literal text
	keyPath []string // identifier key path
	inner   []segment
	wrapper bool // group whose consumed prefix is the wrapper path
}

// Pattern is the compiled, immutable representation of a URL template.
// A Pattern is built once by [Compile] (or by a [Registry] during route
// registration) and is safe for concurrent use: matching and generation
// never mutate it.
type Pattern struct {
	source       string
	segments     []segment
	params       []string // declared query parameter names, in order
	keyPaths     []string // dotted identifier key paths, in order
	hasWildcard  bool
	wildcardOnly bool
}

// Compile parses a pattern string into a reusable [Pattern].
// It fails with a *[compiler.SyntaxError] if the pattern is malformed.
//
// Example:
//
//	p, err := urlpattern.Compile("/studios/:studio.id/movies/:id")
//	if err != nil {
//	    // unbalanced brackets, empty names, duplicate key paths, ...
//	}
func Compile(pattern string) (*Pattern, error) {
	return compile(pattern, false)
}

// MustCompile is like [Compile] but panics on a malformed pattern.
// It simplifies package-level variable initialization for patterns known
// to be valid at development time.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// compile builds a Pattern. When markWrapper is set, a leading top-level
// optional group is flagged as the wrapper prefix group; the Registry uses
// this for wrapper-composed route patterns.
func compile(pattern string, markWrapper bool) (*Pattern, error) {
	compiled, err := compiler.Compile(pattern)
	if err != nil {
		return nil, err
	}

	p := &Pattern{
		source: pattern,
		params: compiler.Params(compiled),
	}
	for _, id := range compiler.Identifiers(compiled) {
		p.keyPaths = append(p.keyPaths, id.KeyPathString())
	}

	pathSegs := 0
	for _, s := range compiled {
		if s.Kind == compiler.KindParam {
			continue
		}
		pathSegs++
		p.segments = append(p.segments, convertSegment(s))
	}

	p.hasWildcard = compiler.HasWildcard(compiled)
	p.wildcardOnly = p.hasWildcard && pathSegs == 1

	if markWrapper && len(p.segments) > 0 && p.segments[0].kind == segGroup {
		p.segments[0].wrapper = true
	}

	return p, nil
}

// convertSegment maps the compiler IR into the matcher's form.
func convertSegment(s compiler.Segment) segment {
	switch s.Kind {
	case compiler.KindLiteral:
		return segment{kind: segLiteral, text: s.Text}
	case compiler.KindIdentifier:
		return segment{kind: segIdentifier, keyPath: s.KeyPath}
	case compiler.KindWildcard:
		return segment{kind: segWildcard}
	case compiler.KindGroup:
		inner := make([]segment, 0, len(s.Inner))
		for _, in := range s.Inner {
			inner = append(inner, convertSegment(in))
		}
		return segment{kind: segGroup, inner: inner}
	default:
		return segment{kind: segLiteral}
	}
}

// String returns the pattern source string.
func (p *Pattern) String() string {
	return p.source
}

// KeyPaths returns the dotted identifier key paths captured by the
// pattern, in declaration order. The returned slice is a copy.
func (p *Pattern) KeyPaths() []string {
	out := make([]string, len(p.keyPaths))
	copy(out, p.keyPaths)
	return out
}

// ParamNames returns the declared query parameter names in declaration
// order. The returned slice is a copy.
func (p *Pattern) ParamNames() []string {
	out := make([]string, len(p.params))
	copy(out, p.params)
	return out
}

// HasWildcard reports whether the pattern ends in a catch-all segment.
func (p *Pattern) HasWildcard() bool {
	return p.hasWildcard
}
