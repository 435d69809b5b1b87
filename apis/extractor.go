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

package apis

import "reflect"

// Extractor assembles the override set for a value or type. It plays the
// role of an annotation reader: it scans whatever override mechanisms are
// available (interfaces, registry entries) once per call and yields a plain
// immutable OverrideSet. The resolver never performs such lookups itself.
type Extractor interface {
	// Extract returns the overrides attached to v, or the zero set.
	Extract(v any, cfg Config) OverrideSet

	// ExtractType returns the overrides attached to t, or the zero set.
	ExtractType(t reflect.Type, cfg Config) OverrideSet
}

// Source is a pluggable override-extraction step. An Extractor chains
// multiple sources in priority order; fields supplied by earlier sources
// win over later ones.
type Source interface {
	// TryExtract attempts to extract overrides for value v according to cfg.
	// It returns (set, true) if handled; otherwise (zero, false) to fall
	// through.
	TryExtract(v any, cfg Config) (o OverrideSet, handled bool)

	// TryExtractType attempts to extract overrides for the reflect.Type t.
	TryExtractType(t reflect.Type, cfg Config) (o OverrideSet, handled bool)
}
