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

	"github.com/spf13/cast"
)

// Values supplies identifier values to URL generation. Nested key paths
// traverse nested maps: the key path "studio.id" resolves against
// Values{"studio": Values{"id": "abc"}} (plain map[string]any and
// map[string]string nest the same way). Leaf values are stringified with
// the cast package, so numbers and booleans are accepted alongside
// strings; nil and empty-string leaves count as missing.
type Values map[string]any

// Identifiers is the nested identifier object extracted by a match.
// Leaves are always strings; intermediate nodes are Identifiers.
type Identifiers map[string]any

// Get resolves a dotted key path against the nested object. It returns
// the leaf string and true, or "" and false when any step of the path is
// absent or non-leaf.
func (ids Identifiers) Get(keyPath string) (string, bool) {
	var cur any = ids
	for _, part := range strings.Split(keyPath, ".") {
		node, ok := cur.(Identifiers)
		if !ok {
			return "", false
		}
		cur, ok = node[part]
		if !ok {
			return "", false
		}
	}
	leaf, ok := cur.(string)
	return leaf, ok
}

// buildIdentifiers reconstructs the nested identifier object from the
// flat binding list produced by a match. Key paths are unique and
// prefix-free by compilation, so every insertion lands on a fresh leaf.
func buildIdentifiers(binds []binding) Identifiers {
	ids := Identifiers{}
	for _, b := range binds {
		node := ids
		for _, part := range b.keyPath[:len(b.keyPath)-1] {
			child, ok := node[part].(Identifiers)
			if !ok {
				child = Identifiers{}
				node[part] = child
			}
			node = child
		}
		node[b.keyPath[len(b.keyPath)-1]] = b.value
	}
	return ids
}

// lookup resolves a key path against the value map, descending through
// nested maps. The second return is false when any step is absent.
func (v Values) lookup(keyPath []string) (any, bool) {
	var cur any = map[string]any(v)
	for _, part := range keyPath {
		m, ok := asStringMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// asStringMap views a value as a string-keyed map without copying where
// possible. cast handles the remaining map shapes (map[any]any from YAML,
// map[string]string, ...).
func asStringMap(x any) (map[string]any, bool) {
	switch m := x.(type) {
	case Values:
		return m, true
	case Identifiers:
		return m, true
	case map[string]any:
		return m, true
	default:
		m2, err := cast.ToStringMapE(x)
		if err != nil {
			return nil, false
		}
		return m2, true
	}
}

// stringifyLeaf renders a leaf value as the single non-empty string a
// path segment requires. nil, empty strings, and values that cannot be
// stringified report false.
func stringifyLeaf(x any) (string, bool) {
	if x == nil {
		return "", false
	}
	s, err := cast.ToStringE(x)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}
