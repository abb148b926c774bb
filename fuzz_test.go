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
	"strings"
	"testing"
)

// FuzzMatch feeds arbitrary paths to a fixed set of patterns. Matching
// must never panic, and a successful match must regenerate a path that
// matches the same pattern with the same identifiers.
func FuzzMatch(f *testing.F) {
	patterns := []*Pattern{
		MustCompile("/movies/:id"),
		MustCompile("/studios/:studio.id/movies/:id"),
		MustCompile("[/studios/:studio.id]/movies/:id"),
		MustCompile("/files/*"),
		MustCompile("/movies/"),
	}

	f.Add("/movies/473")
	f.Add("/studios/20/movies/473")
	f.Add("/files/a/b/c")
	f.Add("//")
	f.Add("/movies/%2f")
	f.Add("")

	f.Fuzz(func(t *testing.T, path string) {
		for _, p := range patterns {
			result, ok := p.Match(path)
			if !ok {
				continue
			}
			if p.HasWildcard() {
				continue
			}

			values := Values{}
			for _, keyPath := range p.KeyPaths() {
				leaf, present := result.Identifiers.Get(keyPath)
				if !present {
					continue
				}
				insertValue(values, strings.Split(keyPath, "."), leaf)
			}

			regenerated, err := p.Generate(values)
			if err != nil {
				// Captured values containing "/" or empty after
				// unescaping cannot round-trip; that is acceptable.
				continue
			}
			again, ok := p.Match(regenerated)
			if !ok {
				t.Fatalf("pattern %q: regenerated %q does not match", p, regenerated)
			}
			for _, keyPath := range p.KeyPaths() {
				want, wantOK := result.Identifiers.Get(keyPath)
				got, gotOK := again.Identifiers.Get(keyPath)
				if wantOK != gotOK || want != got {
					t.Fatalf("pattern %q: key path %q changed from %q to %q", p, keyPath, want, got)
				}
			}
		}
	})
}

// insertValue builds the nested Values shape generation expects.
func insertValue(values Values, keyPath []string, leaf string) {
	node := values
	for _, part := range keyPath[:len(keyPath)-1] {
		child, ok := node[part].(Values)
		if !ok {
			child = Values{}
			node[part] = child
		}
		node = child
	}
	node[keyPath[len(keyPath)-1]] = leaf
}
