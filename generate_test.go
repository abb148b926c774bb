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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		values  Values
		want    string
	}{
		{
			name:    "literal only",
			pattern: "/movies",
			values:  nil,
			want:    "/movies",
		},
		{
			name:    "identifier",
			pattern: "/movies/:id",
			values:  Values{"id": "473"},
			want:    "/movies/473",
		},
		{
			name:    "numeric value stringified",
			pattern: "/movies/:id",
			values:  Values{"id": 473},
			want:    "/movies/473",
		},
		{
			name:    "boolean value stringified",
			pattern: "/flags/:enabled",
			values:  Values{"enabled": true},
			want:    "/flags/true",
		},
		{
			name:    "nested key path",
			pattern: "/studios/:studio.id/movies/:id",
			values:  Values{"studio": Values{"id": "20"}, "id": "473"},
			want:    "/studios/20/movies/473",
		},
		{
			name:    "nested via plain map",
			pattern: "/studios/:studio.id",
			values:  Values{"studio": map[string]any{"id": 20}},
			want:    "/studios/20",
		},
		{
			name:    "nested via string map",
			pattern: "/studios/:studio.id",
			values:  Values{"studio": map[string]string{"id": "20"}},
			want:    "/studios/20",
		},
		{
			name:    "group rendered when values present",
			pattern: "[/studios/:studio.id]/movies/:id",
			values:  Values{"studio": Values{"id": "20"}, "id": "473"},
			want:    "/studios/20/movies/473",
		},
		{
			name:    "group omitted when values missing",
			pattern: "[/studios/:studio.id]/movies/:id",
			values:  Values{"id": "473"},
			want:    "/movies/473",
		},
		{
			name:    "nested groups omitted from innermost missing",
			pattern: "[[/admin]/studios/:studio.id]/movies/:id",
			values:  Values{"id": "473"},
			want:    "/movies/473",
		},
		{
			name:    "literal-only group always renders",
			pattern: "[/v2]/movies/:id",
			values:  Values{"id": "473"},
			want:    "/v2/movies/473",
		},
		{
			name:    "wildcard behind prefix emits nothing",
			pattern: "/files/*",
			values:  nil,
			want:    "/files",
		},
		{
			name:    "trailing slash preserved",
			pattern: "/movies/",
			values:  nil,
			want:    "/movies/",
		},
		{
			name:    "root",
			pattern: "/",
			values:  nil,
			want:    "/",
		},
		{
			name:    "value escaped",
			pattern: "/movies/:title",
			values:  Values{"title": "the thing"},
			want:    "/movies/the%20thing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := MustCompile(tt.pattern)
			got, err := p.Generate(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateMissingValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		values  Values
		keyPath string
	}{
		{"absent key", "/movies/:id", Values{}, "id"},
		{"nil values", "/movies/:id", nil, "id"},
		{"nil leaf", "/movies/:id", Values{"id": nil}, "id"},
		{"empty string leaf", "/movies/:id", Values{"id": ""}, "id"},
		{"absent nested key", "/studios/:studio.id", Values{"studio": Values{}}, "studio.id"},
		{"non-map intermediate", "/studios/:studio.id", Values{"studio": "20"}, "studio.id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := MustCompile(tt.pattern)
			_, err := p.Generate(tt.values)
			require.ErrorIs(t, err, ErrMissingValue)
			assert.Contains(t, err.Error(), tt.keyPath)
		})
	}
}

func TestGenerateNotGenerable(t *testing.T) {
	t.Parallel()

	p := MustCompile("/*")
	_, err := p.Generate(nil)
	require.ErrorIs(t, err, ErrNotGenerable)
}

func TestGenerateOptions(t *testing.T) {
	t.Parallel()

	p := MustCompile("/movies/:id")

	got, err := p.Generate(Values{"id": "473"}, WithFragment("reviews"))
	require.NoError(t, err)
	assert.Equal(t, "/movies/473#reviews", got)

	got, err = p.Generate(Values{"id": "473"}, WithQueryValues(url.Values{"lang": {"en"}}))
	require.NoError(t, err)
	assert.Equal(t, "/movies/473?lang=en", got)

	got, err = p.Generate(Values{"id": "473"},
		WithQueryValues(url.Values{"lang": {"en"}}),
		WithFragment("reviews"),
	)
	require.NoError(t, err)
	assert.Equal(t, "/movies/473?lang=en#reviews", got)
}

// Generated URLs must match the pattern that produced them, and the
// match must recover the values that went in.
func TestGenerateMatchRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		values  Values
	}{
		{"/movies/:id", Values{"id": "473"}},
		{"/studios/:studio.id/movies/:id", Values{"studio": Values{"id": "20"}, "id": "473"}},
		{"[/studios/:studio.id]/movies/:id", Values{"studio": Values{"id": "20"}, "id": "473"}},
		{"[/studios/:studio.id]/movies/:id", Values{"id": "473"}},
		{"/movies/:title", Values{"title": "the thing"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			p := MustCompile(tt.pattern)
			path, err := p.Generate(tt.values)
			require.NoError(t, err)

			result, ok := p.Match(path)
			require.True(t, ok, "generated %q should match its own pattern", path)

			for _, keyPath := range p.KeyPaths() {
				want, found := tt.values.lookup(strings.Split(keyPath, "."))
				if !found {
					continue
				}
				got, present := result.Identifiers.Get(keyPath)
				require.True(t, present, "key path %q lost in round trip", keyPath)
				wantStr, _ := stringifyLeaf(want)
				assert.Equal(t, wantStr, got)
			}
		})
	}
}
