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

// NewNamerSource creates an apis.Source that reads the override interfaces
// (apis.Namer, apis.Namespacer, apis.Eraser) off a value.
func NewNamerSource() apis.Source {
	return namerSource{}
}

// namerSource is a zero-cost fast path: if v implements any of the override
// interfaces, their answers become the highest-priority overrides.
type namerSource struct{}

// Ensure namerSource implements apis.Source.
var _ apis.Source = namerSource{}

// TryExtract collects overrides from the interfaces v implements.
func (namerSource) TryExtract(v any, _ apis.Config) (apis.OverrideSet, bool) {
	if v == nil {
		return apis.OverrideSet{}, false
	}
	var o apis.OverrideSet
	handled := false
	if n, ok := v.(apis.Namer); ok {
		o.Name = apis.Some(n.SchemaName())
		handled = true
	}
	if n, ok := v.(apis.Namespacer); ok {
		o.Namespace = apis.Some(n.SchemaNamespace())
		handled = true
	}
	if e, ok := v.(apis.Eraser); ok {
		o.Erased = e.SchemaErased()
		handled = true
	}
	return o, handled
}

// TryExtractType always returns false: the interfaces require an instance.
func (namerSource) TryExtractType(_ reflect.Type, _ apis.Config) (apis.OverrideSet, bool) {
	// No instance -> cannot consult the override interfaces.
	return apis.OverrideSet{}, false
}
