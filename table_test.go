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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTableYAML = `
wrappers:
  - name: studio
    pattern: /studios/:studio.id
  - name: collection
    pattern: /collections/:collection.id
    parent: studio
routes:
  - name: movie
    pattern: /movies/:id
    method: GET
    aliases:
      - /films/:id
    wrapper: collection
  - name: movies
    pattern: /movies
  - name: fallback
    pattern: /*
`

func TestParseTable(t *testing.T) {
	t.Parallel()

	table, err := ParseTable([]byte(testTableYAML))
	require.NoError(t, err)

	require.Len(t, table.Wrappers, 2)
	assert.Equal(t, "studio", table.Wrappers[0].Name)
	assert.Equal(t, "studio", table.Wrappers[1].Parent)

	require.Len(t, table.Routes, 3)
	assert.Equal(t, "movie", table.Routes[0].Name)
	assert.Equal(t, "GET", table.Routes[0].Method)
	assert.Equal(t, []string{"/films/:id"}, table.Routes[0].Aliases)
	assert.Equal(t, "collection", table.Routes[0].Wrapper)
}

func TestParseTableErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "malformed yaml",
			yaml: "routes:\n  - name: [unclosed",
		},
		{
			name: "no routes",
			yaml: "wrappers:\n  - name: studio\n    pattern: /studios/:studio.id\n",
		},
		{
			name: "route without name",
			yaml: "routes:\n  - pattern: /movies\n",
		},
		{
			name: "route without pattern",
			yaml: "routes:\n  - name: movies\n",
		},
		{
			name: "wrapper without pattern",
			yaml: "wrappers:\n  - name: studio\nroutes:\n  - name: movies\n    pattern: /movies\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTable([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestRegisterTable(t *testing.T) {
	t.Parallel()

	table, err := ParseTable([]byte(testTableYAML))
	require.NoError(t, err)

	reg := New()
	require.NoError(t, reg.RegisterTable(table))

	ctx := context.Background()

	res, err := reg.Resolve(ctx, "/studios/20/collections/5/movies/473", WithResolveMethod("GET"))
	require.NoError(t, err)
	assert.Equal(t, "movie", res.Route.Name())
	assert.Equal(t, "/studios/20/collections/5", res.Result.WrapperPath)

	res, err = reg.Resolve(ctx, "/films/473", WithResolveMethod("GET"))
	require.NoError(t, err)
	assert.Equal(t, "movie", res.Route.Name())

	res, err = reg.Resolve(ctx, "/anything/else")
	require.NoError(t, err)
	assert.Equal(t, "fallback", res.Route.Name())
}

func TestRegisterTableNil(t *testing.T) {
	t.Parallel()

	reg := New()
	require.ErrorIs(t, reg.RegisterTable(nil), ErrNilTable)
}

func TestRegisterTableNamesFailingEntry(t *testing.T) {
	t.Parallel()

	table := &Table{
		Routes: []TableRoute{
			{Name: "ok", Pattern: "/movies"},
			{Name: "broken", Pattern: "/movies/::"},
		},
	}

	reg := New()
	err := reg.RegisterTable(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	// Entries before the failure stay registered.
	assert.NotNil(t, reg.Route("ok"))
}

func TestRegisterTableUnknownWrapper(t *testing.T) {
	t.Parallel()

	table := &Table{
		Routes: []TableRoute{
			{Name: "movie", Pattern: "/movies/:id", Wrapper: "nope"},
		},
	}

	reg := New()
	err := reg.RegisterTable(table)
	require.ErrorIs(t, err, ErrUnknownWrapper)
}

func TestLoadTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testTableYAML), 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Len(t, table.Routes, 3)

	_, err = LoadTable(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
