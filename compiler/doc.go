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

// Package compiler turns URL pattern strings into segment sequences.
//
// A pattern describes the shape of a URL path plus an optional query
// parameter declaration:
//
//	/studios/:studio.id/movies/:id
//	[/:parentId]/movies
//	/search?q&page
//	/files/*
//
// Compilation is a single left-to-right scan with a stack of optional
// group frames. The result is an ordered []Segment, the shared
// intermediate representation consumed by the matcher and the generator
// in the parent package.
//
// # Segment kinds
//
//   - Literal: static text, matched by string equality
//   - Identifier: captures one non-empty path segment under a dotted key
//     path such as "studio.id"
//   - Param: a declared query-string parameter, matched against the query
//     mapping rather than the path
//   - Wildcard: consumes any remaining path suffix; always final
//   - Group: a bracketed sub-sequence that may be absent from the URL
//
// # Errors
//
// Compile fails with a *SyntaxError carrying the pattern, the byte offset
// of the offending character, and a reason. Compilation errors are fatal:
// there is no partial or best-effort result.
package compiler
