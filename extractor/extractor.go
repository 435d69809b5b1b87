/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package extractor assembles override sets from pluggable sources.
// Typical chain: NamerSource -> RegistrySource.
package extractor

import (
	"reflect"

	"dirpx.dev/schemaid/apis"
)

// New constructs an apis.Extractor that consults the given sources in
// order. Nil sources are ignored. The returned extractor is safe for
// concurrent use provided sources themselves are safe for concurrent
// TryExtract calls.
func New(sources ...apis.Source) apis.Extractor {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Source, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{sources: out}
}

// chain is an immutable, order-preserving extractor over a set of sources.
// Unlike a first-match resolver chain, every source contributes: override
// fields are independent, so the chain merges field-wise with earlier
// sources taking precedence.
type chain struct {
	sources []apis.Source
}

// Ensure chain implements apis.Extractor.
var _ apis.Extractor = chain{}

// Extract merges the overrides each source supplies for the value.
// Returns the zero set if no source handled it.
func (c chain) Extract(v any, cfg apis.Config) apis.OverrideSet {
	var out apis.OverrideSet
	for _, s := range c.sources {
		if o, ok := s.TryExtract(v, cfg); ok {
			out = out.Merge(o)
		}
	}
	return out
}

// ExtractType merges the overrides each source supplies for the type.
// Returns the zero set if no source handled it.
func (c chain) ExtractType(t reflect.Type, cfg apis.Config) apis.OverrideSet {
	var out apis.OverrideSet
	for _, s := range c.sources {
		if o, ok := s.TryExtractType(t, cfg); ok {
			out = out.Merge(o)
		}
	}
	return out
}
