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

// Wrapper is a purely structural registry entry: it has a pattern but no
// handler, and exists to contribute an optional path prefix (the wrapper
// path) to the routes registered under it.
//
// A wrapper may itself be registered under a parent wrapper; the
// effective pattern then nests the parent chain as optional groups, so a
// route under the innermost wrapper accepts the fully-wrapped, partially-
// wrapped, and bare forms of its URL.
type Wrapper struct {
	name      string
	source    string // the wrapper's own pattern
	effective string // parent chain composed around source
	pattern   *Pattern
	parent    *Wrapper
}

// Name returns the wrapper's registry-unique name.
func (w *Wrapper) Name() string {
	return w.name
}

// Parent returns the parent wrapper, or nil for a top-level wrapper.
func (w *Wrapper) Parent() *Wrapper {
	return w.parent
}

// Pattern returns the wrapper's compiled effective pattern, with the
// parent chain composed in as optional groups.
func (w *Wrapper) Pattern() *Pattern {
	return w.pattern
}

// Path generates the wrapper's concrete path prefix from the supplied
// values. Parent-scoped values may be omitted to generate the prefix
// without the parent chain.
func (w *Wrapper) Path(values Values) (string, error) {
	return w.pattern.Generate(values)
}

// composeSource nests a wrapper's effective pattern around a child
// pattern source as an optional group. The group carries its own leading
// separator, so the child source concatenates directly.
func composeSource(wrapped, child string) string {
	return "[" + wrapped + "]" + child
}
