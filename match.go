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
	"strings"
)

// MatchResult holds the structured values extracted from a matched URL.
type MatchResult struct {
	// Identifiers reconstructs nested objects from dotted key paths:
	// matching "/studios/abc/movies/123" against
	// "/studios/:studio.id/movies/:id" yields
	// {"id": "123", "studio": {"id": "abc"}}.
	Identifiers Identifiers

	// Params holds the declared query parameters found in the supplied
	// query mapping. Declared names absent from the query are absent
	// here; values are copied verbatim, including repeated keys.
	Params url.Values

	// WrapperPath is the literal path prefix consumed by an enclosing
	// wrapper's optional group, or "" when the URL carried no wrapper
	// prefix. Host layers use it to mount child views beneath the
	// wrapper's location.
	WrapperPath string
}

// binding is one captured identifier value awaiting nested reconstruction.
type binding struct {
	keyPath []string
	value   string
}

// matchRun carries the mutable state of a single match attempt.
type matchRun struct {
	cands      []string
	binds      []binding
	wrapperLo  int
	wrapperHi  int
	hasWrapper bool
}

// Match tests the pattern against a URL path with no query mapping.
// It returns the extracted values and true, or nil and false when the
// path does not conform to the pattern.
func (p *Pattern) Match(path string) (*MatchResult, bool) {
	return p.MatchQuery(path, nil)
}

// MatchQuery tests the pattern against a pre-split URL path and an
// already-parsed query mapping.
//
// The path is split on '/'; pattern segments are walked against path
// segments in lock-step. Identifier captures never bind empty segments,
// optional groups are tried greedily and skipped as a whole when
// including them cannot complete the match, and a wildcard consumes any
// remaining suffix. A trailing slash in the path matches only a pattern
// that ends in an explicit trailing slash.
func (p *Pattern) MatchQuery(path string, query url.Values) (*MatchResult, bool) {
	if path == "" || path[0] != '/' {
		return nil, false
	}
	cands := strings.Split(path, "/")[1:]

	run := &matchRun{cands: cands}
	if !run.seq(p.segments, 0, 0, func(ci int) bool { return ci == len(cands) }) {
		return nil, false
	}

	result := &MatchResult{
		Identifiers: buildIdentifiers(run.binds),
		Params:      url.Values{},
	}
	for _, name := range p.params {
		if vals, ok := query[name]; ok {
			result.Params[name] = append([]string(nil), vals...)
		}
	}
	if run.hasWrapper && run.wrapperHi > run.wrapperLo {
		result.WrapperPath = "/" + strings.Join(cands[run.wrapperLo:run.wrapperHi], "/")
	}

	return result, true
}

// seq matches segs[si:] against r.cands starting at candidate index ci,
// then hands the final cursor to cont. Optional groups are ordered-choice:
// the greedy branch (group included) is tried first and the skip branch
// only when the greedy branch cannot complete the remainder of the
// sequence. Identifier bindings are rolled back on a failed branch.
func (r *matchRun) seq(segs []segment, si, ci int, cont func(ci int) bool) bool {
	if si == len(segs) {
		return cont(ci)
	}

	seg := segs[si]
	switch seg.kind {
	case segLiteral:
		if ci < len(r.cands) && r.cands[ci] == seg.text {
			return r.seq(segs, si+1, ci+1, cont)
		}
		return false

	case segIdentifier:
		// Identifiers can never bind an empty segment.
		if ci >= len(r.cands) || r.cands[ci] == "" {
			return false
		}
		r.binds = append(r.binds, binding{keyPath: seg.keyPath, value: unescapeSegment(r.cands[ci])})
		if r.seq(segs, si+1, ci+1, cont) {
			return true
		}
		r.binds = r.binds[:len(r.binds)-1]
		return false

	case segWildcard:
		// The wildcard is the final path segment by construction; it
		// consumes everything that remains, including nothing.
		return cont(len(r.cands))

	case segGroup:
		start := ci
		ok := r.seq(seg.inner, 0, ci, func(after int) bool {
			if !r.seq(segs, si+1, after, cont) {
				return false
			}
			if seg.wrapper {
				r.wrapperLo, r.wrapperHi = start, after
				r.hasWrapper = true
			}
			return true
		})
		if ok {
			return true
		}
		// Skip the group entirely: zero segments consumed.
		return r.seq(segs, si+1, ci, cont)

	default:
		return false
	}
}

// unescapeSegment undoes percent-encoding on a captured segment value.
// Values that do not unescape cleanly are kept verbatim.
func unescapeSegment(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	if unescaped, err := url.PathUnescape(s); err == nil {
		return unescaped
	}
	return s
}
