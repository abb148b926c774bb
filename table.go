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
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Table is a declarative route table, typically loaded from a YAML file.
// It lets deployments define their URL space in configuration instead of
// code:
//
//	wrappers:
//	  - name: studio
//	    pattern: /studios/:studio.id
//	routes:
//	  - name: movie
//	    pattern: /movies/:id
//	    method: GET
//	    aliases:
//	      - /films/:id
//	    wrapper: studio
//
// Wrappers are registered before routes, in list order, so a wrapper's
// parent must appear earlier in the wrappers list.
type Table struct {
	Wrappers []TableWrapper `yaml:"wrappers" validate:"omitempty,dive"`
	Routes   []TableRoute   `yaml:"routes"   validate:"required,min=1,dive"`
}

// TableWrapper declares one wrapper entry of a [Table].
type TableWrapper struct {
	Name    string `yaml:"name"    validate:"required"`
	Pattern string `yaml:"pattern" validate:"required"`
	Parent  string `yaml:"parent"  validate:"omitempty"`
}

// TableRoute declares one route entry of a [Table].
type TableRoute struct {
	Name    string   `yaml:"name"    validate:"required"`
	Pattern string   `yaml:"pattern" validate:"required"`
	Method  string   `yaml:"method"  validate:"omitempty"`
	Aliases []string `yaml:"aliases" validate:"omitempty,dive,required"`
	Wrapper string   `yaml:"wrapper" validate:"omitempty"`
}

// tableValidator checks structural constraints before any pattern is
// compiled, so a malformed table fails with a field-level error instead
// of a compile error on an empty string.
var tableValidator = validator.New(validator.WithRequiredStructEnabled())

// ParseTable decodes a YAML route table and validates its structure.
// Pattern syntax is NOT checked here; it is checked when the table is
// registered.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse route table: %w", err)
	}
	if err := tableValidator.Struct(&t); err != nil {
		return nil, fmt.Errorf("invalid route table: %w", err)
	}
	return &t, nil
}

// LoadTable reads and parses a YAML route table from path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route table: %w", err)
	}
	return ParseTable(data)
}

// RegisterTable registers every wrapper and route a table declares, in
// list order. The first failing entry aborts registration and is named in
// the returned error; entries registered before it remain registered.
func (r *Registry) RegisterTable(t *Table) error {
	if t == nil {
		return ErrNilTable
	}

	for _, w := range t.Wrappers {
		var opts []RegisterOption
		if w.Parent != "" {
			opts = append(opts, WithParent(w.Parent))
		}
		if _, err := r.RegisterWrapper(w.Name, w.Pattern, opts...); err != nil {
			return fmt.Errorf("wrapper %q: %w", w.Name, err)
		}
	}

	for _, rt := range t.Routes {
		var opts []RegisterOption
		if rt.Method != "" {
			opts = append(opts, WithMethod(rt.Method))
		}
		if len(rt.Aliases) > 0 {
			opts = append(opts, WithAliases(rt.Aliases...))
		}
		if rt.Wrapper != "" {
			opts = append(opts, WithWrapper(rt.Wrapper))
		}
		if _, err := r.Register(rt.Name, rt.Pattern, opts...); err != nil {
			return fmt.Errorf("route %q: %w", rt.Name, err)
		}
	}

	return nil
}
