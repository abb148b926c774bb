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

import (
	"fmt"
	"strings"
)

// SyntaxError describes a malformed pattern string. It is always fatal:
// a pattern that fails to compile cannot be registered or matched.
type SyntaxError struct {
	Pattern string // the full pattern source
	Pos     int    // byte offset of the offending character
	Reason  string // human-readable description
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("urlpattern: invalid pattern %q at offset %d: %s", e.Pattern, e.Pos, e.Reason)
}

// syntaxErr builds a *SyntaxError for the pattern being compiled.
func syntaxErr(pattern string, pos int, reason string) error {
	return &SyntaxError{Pattern: pattern, Pos: pos, Reason: reason}
}

// Special characters that terminate a literal run or an identifier name.
const specials = "/:*[]?&="

func isSpecial(c byte) bool {
	return strings.IndexByte(specials, c) >= 0
}

// validName reports whether s is a valid identifier key-path part or query
// parameter name: one or more letters, digits, or underscores.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			continue
		}
		return false
	}
	return true
}

// groupFrame collects the segments of one open optional group.
type groupFrame struct {
	segments []Segment
	open     int // offset of the '[' that opened this frame
}

// Compile parses a pattern string into its segment sequence in a single
// left-to-right scan.
//
// Grammar summary:
//
//   - the path portion is a sequence of '/'-separated segments; the root
//     pattern must begin with '/' or with an optional group that does
//   - ":name" captures one non-empty segment; the name may be a dotted
//     key path ("studio.id") used to build nested identifier objects
//   - "*" matches any remaining suffix and must be the final path segment
//   - "[...]" encloses an optional sub-sequence; the group carries its own
//     leading '/', so it appears where a separator otherwise would
//     ("[/movies]/:id")
//   - everything after a top-level '?' is a '&'-separated list of declared
//     query parameter names; query parameters are matched against the
//     query mapping, never against path segments
//
// Compile rejects unterminated or empty brackets, empty identifier names,
// illegal characters in names, consecutive separators, content after a
// wildcard, and duplicate or prefix-conflicting key paths.
func Compile(pattern string) ([]Segment, error) {
	if pattern == "" {
		return nil, syntaxErr(pattern, 0, "empty pattern")
	}
	if pattern[0] != '/' && pattern[0] != '[' {
		return nil, syntaxErr(pattern, 0, "pattern must begin with '/'")
	}

	stack := []*groupFrame{{}}
	top := func() *groupFrame { return stack[len(stack)-1] }

	// pending is true when a '/' has been consumed and the segment slot it
	// opened is still empty.
	pending := false
	sawWildcard := false

	i := 0
scan:
	for i < len(pattern) {
		c := pattern[i]

		if sawWildcard && c != '?' {
			return nil, syntaxErr(pattern, i, "wildcard must be the final path segment")
		}

		switch c {
		case '/':
			if pending {
				return nil, syntaxErr(pattern, i, "consecutive separators")
			}
			pending = true
			i++

		case ':':
			if !pending {
				return nil, syntaxErr(pattern, i, "identifier capture must start a segment")
			}
			pending = false
			j := i + 1
			for j < len(pattern) && !isSpecial(pattern[j]) && pattern[j] != '.' {
				j++
			}
			// Extend across dots for nested key paths.
			for j < len(pattern) && pattern[j] == '.' {
				k := j + 1
				for k < len(pattern) && !isSpecial(pattern[k]) && pattern[k] != '.' {
					k++
				}
				j = k
			}
			name := pattern[i+1 : j]
			if name == "" {
				return nil, syntaxErr(pattern, i, "empty identifier name")
			}
			parts := strings.Split(name, ".")
			for _, part := range parts {
				if !validName(part) {
					return nil, syntaxErr(pattern, i, fmt.Sprintf("illegal identifier name %q", name))
				}
			}
			top().segments = append(top().segments, Segment{Kind: KindIdentifier, KeyPath: parts})
			i = j

		case '*':
			if !pending {
				return nil, syntaxErr(pattern, i, "wildcard must start a segment")
			}
			if len(stack) > 1 {
				return nil, syntaxErr(pattern, i, "wildcard not allowed inside optional group")
			}
			pending = false
			sawWildcard = true
			top().segments = append(top().segments, Segment{Kind: KindWildcard})
			i++

		case '[':
			if pending {
				return nil, syntaxErr(pattern, i, "optional group must replace the separator, not follow it")
			}
			if i+1 >= len(pattern) || (pattern[i+1] != '/' && pattern[i+1] != '[') {
				return nil, syntaxErr(pattern, i, "optional group must begin with '/'")
			}
			stack = append(stack, &groupFrame{open: i})
			i++

		case ']':
			if len(stack) == 1 {
				return nil, syntaxErr(pattern, i, "unbalanced ']'")
			}
			if pending {
				// Trailing '/' inside the group is an explicit empty literal.
				top().segments = append(top().segments, Segment{Kind: KindLiteral})
				pending = false
			}
			frame := top()
			stack = stack[:len(stack)-1]
			top().segments = append(top().segments, Segment{Kind: KindGroup, Inner: frame.segments})
			i++

		case '?':
			if len(stack) > 1 {
				return nil, syntaxErr(pattern, i, "query declaration inside optional group")
			}
			if pending {
				top().segments = append(top().segments, Segment{Kind: KindLiteral})
				pending = false
			}
			params, err := compileQuery(pattern, i+1)
			if err != nil {
				return nil, err
			}
			top().segments = append(top().segments, params...)
			break scan

		case '&', '=':
			return nil, syntaxErr(pattern, i, fmt.Sprintf("illegal character %q in path", c))

		default:
			if !pending {
				return nil, syntaxErr(pattern, i, "literal must start a segment")
			}
			pending = false
			j := i
			for j < len(pattern) && !isSpecial(pattern[j]) {
				j++
			}
			// A capture or group boundary mid-segment is not representable.
			if j < len(pattern) && (pattern[j] == ':' || pattern[j] == '*') {
				return nil, syntaxErr(pattern, j, fmt.Sprintf("%q must start a segment", pattern[j]))
			}
			top().segments = append(top().segments, Segment{Kind: KindLiteral, Text: pattern[i:j]})
			i = j
		}
	}

	if len(stack) > 1 {
		return nil, syntaxErr(pattern, top().open, "unterminated optional group")
	}
	if pending {
		// The pattern ends with '/': an explicit trailing empty literal.
		top().segments = append(top().segments, Segment{Kind: KindLiteral})
	}

	segments := stack[0].segments
	if err := checkKeyPaths(pattern, segments); err != nil {
		return nil, err
	}

	return segments, nil
}

// compileQuery parses the query declaration portion of a pattern,
// beginning just after the '?'. Each '&'-separated entry declares one
// query parameter name.
func compileQuery(pattern string, start int) ([]Segment, error) {
	var params []Segment
	seen := make(map[string]bool)

	i := start
	for i <= len(pattern) {
		j := i
		for j < len(pattern) && pattern[j] != '&' {
			j++
		}
		name := pattern[i:j]
		if !validName(name) {
			return nil, syntaxErr(pattern, i, fmt.Sprintf("illegal query parameter name %q", name))
		}
		if seen[name] {
			return nil, syntaxErr(pattern, i, fmt.Sprintf("duplicate query parameter %q", name))
		}
		seen[name] = true
		params = append(params, Segment{Kind: KindParam, Name: name})
		if j == len(pattern) {
			break
		}
		i = j + 1
	}

	return params, nil
}

// checkKeyPaths rejects duplicate identifier key paths and key paths where
// one is a strict prefix of another. A prefix conflict cannot be realized
// as a nested identifier object: the shared key would need to hold both a
// string and a map.
func checkKeyPaths(pattern string, segments []Segment) error {
	ids := Identifiers(segments)
	paths := make([]string, len(ids))
	for i, id := range ids {
		paths[i] = id.KeyPathString()
	}
	for i := 0; i < len(paths); i++ {
		for j := i + 1; j < len(paths); j++ {
			if paths[i] == paths[j] {
				return syntaxErr(pattern, 0, fmt.Sprintf("duplicate key path %q", paths[i]))
			}
			if strings.HasPrefix(paths[j], paths[i]+".") || strings.HasPrefix(paths[i], paths[j]+".") {
				return syntaxErr(pattern, 0, fmt.Sprintf("conflicting key paths %q and %q", paths[i], paths[j]))
			}
		}
	}
	return nil
}
