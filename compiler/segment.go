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

package compiler

import "strings"

// Kind identifies the type of a compiled pattern segment.
type Kind uint8

const (
	// KindLiteral is a static path segment that must match exactly.
	KindLiteral Kind = iota

	// KindIdentifier captures one non-empty path segment under a
	// (possibly nested) dot-separated key path.
	KindIdentifier

	// KindParam declares a query-string parameter. Param segments never
	// participate in path matching; they are looked up in the query
	// mapping supplied alongside the path.
	KindParam

	// KindWildcard matches any remaining path suffix. A wildcard is
	// always the final path segment of its pattern.
	KindWildcard

	// KindGroup is a bracketed sub-sequence that may be entirely absent
	// from a matched URL.
	KindGroup
)

// String returns a human-readable name for the segment kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindIdentifier:
		return "identifier"
	case KindParam:
		return "param"
	case KindWildcard:
		return "wildcard"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Segment is one atomic unit of a compiled pattern. The populated fields
// depend on Kind:
//
//   - KindLiteral: Text holds the segment text ("" for an explicit
//     trailing-slash segment)
//   - KindIdentifier: KeyPath holds the dot-split key path
//   - KindParam: Name holds the declared query parameter name
//   - KindGroup: Inner holds the group's sub-sequence
//   - KindWildcard: no payload
type Segment struct {
	Kind    Kind
	Text    string
	Name    string
	KeyPath []string
	Inner   []Segment
}

// KeyPathString returns the identifier key path in its dotted source form,
// or "" for non-identifier segments.
func (s Segment) KeyPathString() string {
	if s.Kind != KindIdentifier {
		return ""
	}
	return strings.Join(s.KeyPath, ".")
}

// String reconstructs the source form of the segment, including the
// leading separator for path segments. Param segments render without a
// separator since they live in the query declaration.
func (s Segment) String() string {
	switch s.Kind {
	case KindLiteral:
		return "/" + s.Text
	case KindIdentifier:
		return "/:" + s.KeyPathString()
	case KindParam:
		return s.Name
	case KindWildcard:
		return "/*"
	case KindGroup:
		var b strings.Builder
		b.WriteByte('[')
		for _, inner := range s.Inner {
			b.WriteString(inner.String())
		}
		b.WriteByte(']')
		return b.String()
	default:
		return ""
	}
}

// Identifiers returns every identifier segment in the sequence, descending
// into optional groups in order.
func Identifiers(segments []Segment) []Segment {
	var out []Segment
	for _, s := range segments {
		switch s.Kind {
		case KindIdentifier:
			out = append(out, s)
		case KindGroup:
			out = append(out, Identifiers(s.Inner)...)
		}
	}
	return out
}

// Params returns the declared query parameter names in declaration order.
func Params(segments []Segment) []string {
	var out []string
	for _, s := range segments {
		if s.Kind == KindParam {
			out = append(out, s.Name)
		}
	}
	return out
}

// HasWildcard reports whether the sequence contains a wildcard segment.
// Wildcards cannot appear inside groups, so only the top level is checked.
func HasWildcard(segments []Segment) bool {
	for _, s := range segments {
		if s.Kind == KindWildcard {
			return true
		}
	}
	return false
}
