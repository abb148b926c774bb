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

import "errors"

var (
	// ErrMissingValue indicates that URL generation could not resolve a
	// required identifier key path in the supplied values. The returned
	// error wraps this sentinel and names the key path; recover by
	// supplying the missing value.
	ErrMissingValue = errors.New("missing value for key path")

	// ErrNotGenerable indicates an attempt to generate a URL from a
	// wildcard-only pattern. Catch-all routes have no generable form.
	ErrNotGenerable = errors.New("pattern is not generable")

	// ErrRouteNotFound indicates that no registered route matched the
	// resolved URL. This is a reportable outcome, not a failure of the
	// registry; host layers typically map it to a 404-equivalent.
	ErrRouteNotFound = errors.New("route not found")

	// ErrNameEmpty indicates that a route or wrapper was registered
	// without a name.
	ErrNameEmpty = errors.New("name must not be empty")

	// ErrUnknownWrapper indicates that a route referenced a wrapper name
	// that has not been registered.
	ErrUnknownWrapper = errors.New("unknown wrapper")

	// ErrUnknownParent indicates that a wrapper referenced a parent
	// wrapper name that has not been registered.
	ErrUnknownParent = errors.New("unknown parent wrapper")

	// ErrNilTable indicates that a nil route table was passed to
	// RegisterTable.
	ErrNilTable = errors.New("route table is nil")
)
