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

// Override is an optional string override. The zero value means "absent".
type Override struct {
	// Value is the override value. It is meaningful only when OK is true.
	// An explicitly present empty string is a legal override.
	Value string
	// OK reports whether the override is present.
	OK bool
}

// Some returns a present Override carrying v.
func Some(v string) Override {
	return Override{Value: v, OK: true}
}

// OverrideSet carries user-supplied overrides for name derivation.
// All fields are independent; any combination is legal, including the zero
// value (fully derived defaults). OverrideSet is a comparable value type.
type OverrideSet struct {
	// Name, when present, replaces the derived name outright.
	Name Override

	// Namespace, when present, replaces the derived namespace outright.
	// It is used verbatim: no normalization or stripping is applied.
	Namespace Override

	// Erased makes the default name derivation ignore type arguments.
	// It has no effect when Name is present.
	Erased bool
}

// IsZero reports whether no override is set.
func (o OverrideSet) IsZero() bool {
	return o == OverrideSet{}
}

// Merge fills absent fields of o from other and returns the result.
// Fields already present in o win; Erased is combined with OR. Extractors
// use Merge to layer override sources by priority.
func (o OverrideSet) Merge(other OverrideSet) OverrideSet {
	if !o.Name.OK {
		o.Name = other.Name
	}
	if !o.Namespace.OK {
		o.Namespace = other.Namespace
	}
	o.Erased = o.Erased || other.Erased
	return o
}
