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

package extractor

import (
	"reflect"

	"dirpx.dev/schemaid/apis"
)

// NewRegistrySource creates an apis.Source backed by an apis.Registry.
func NewRegistrySource(reg apis.Registry) apis.Source {
	return &registrySource{reg: reg}
}

// registrySource consults a provided registry (reflection-free lookup).
type registrySource struct {
	reg apis.Registry
}

// Ensure registrySource implements apis.Source.
var _ apis.Source = (*registrySource)(nil)

// TryExtract looks up the overrides registered for v's type.
func (s *registrySource) TryExtract(v any, _ apis.Config) (apis.OverrideSet, bool) {
	if v == nil || s.reg == nil {
		return apis.OverrideSet{}, false
	}
	return s.reg.Lookup(reflect.TypeOf(v))
}

// TryExtractType looks up the overrides registered for t.
func (s *registrySource) TryExtractType(t reflect.Type, _ apis.Config) (apis.OverrideSet, bool) {
	if t == nil || s.reg == nil {
		return apis.OverrideSet{}, false
	}
	return s.reg.Lookup(t)
}
