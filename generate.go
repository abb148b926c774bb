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
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// GenerateOption customizes a single URL generation call.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	fragment string
	query    url.Values
}

// WithFragment appends "#fragment" to the generated URL.
//
// Example:
//
//	p.Generate(values, urlpattern.WithFragment("reviews"))
//	// "/movies/123#reviews"
func WithFragment(fragment string) GenerateOption {
	return func(c *generateConfig) {
		c.fragment = fragment
	}
}

// WithQueryValues appends the encoded query string to the generated URL.
func WithQueryValues(query url.Values) GenerateOption {
	return func(c *generateConfig) {
		c.query = query
	}
}

// Generate renders a concrete path from the pattern and the supplied
// values.
//
// Identifier captures resolve their dotted key paths against values;
// numbers and booleans are stringified, while nil and empty strings fail
// with an error wrapping [ErrMissingValue] and naming the key path.
// An optional group renders only when every key path inside it resolves;
// otherwise the whole group is omitted silently. Wildcard-only patterns
// fail with [ErrNotGenerable]; a wildcard behind a prefix emits nothing.
//
// The result always carries a single leading '/'; a trailing slash
// appears only when the pattern ends in an explicit one.
func (p *Pattern) Generate(values Values, opts ...GenerateOption) (string, error) {
	cfg := generateConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if p.wildcardOnly {
		return "", fmt.Errorf("%w: %q", ErrNotGenerable, p.source)
	}

	var b strings.Builder
	if err := renderSeq(&b, p.segments, values); err != nil {
		return "", err
	}

	path := b.String()
	if path == "" {
		path = "/"
	}
	if len(cfg.query) > 0 {
		path += "?" + cfg.query.Encode()
	}
	if cfg.fragment != "" {
		path += "#" + cfg.fragment
	}

	return path, nil
}

// renderSeq renders one segment sequence into b. Group sub-sequences
// render into a scratch buffer first so a missing value can drop the
// group without emitting partial text.
func renderSeq(b *strings.Builder, segs []segment, values Values) error {
	for _, seg := range segs {
		switch seg.kind {
		case segLiteral:
			b.WriteByte('/')
			b.WriteString(seg.text)

		case segIdentifier:
			raw, ok := values.lookup(seg.keyPath)
			if !ok {
				return missingValue(seg.keyPath)
			}
			s, ok := stringifyLeaf(raw)
			if !ok {
				return missingValue(seg.keyPath)
			}
			b.WriteByte('/')
			b.WriteString(url.PathEscape(s))

		case segWildcard:
			// Catch-all suffixes have no generated form.

		case segGroup:
			var inner strings.Builder
			err := renderSeq(&inner, seg.inner, values)
			switch {
			case err == nil:
				b.WriteString(inner.String())
			case errors.Is(err, ErrMissingValue):
				// All-or-nothing: omit the group.
			default:
				return err
			}
		}
	}
	return nil
}

// missingValue builds the generation error naming the unresolved key path.
func missingValue(keyPath []string) error {
	return fmt.Errorf("%w %q", ErrMissingValue, strings.Join(keyPath, "."))
}
