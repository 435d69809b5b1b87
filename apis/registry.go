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

// Registry stores per-type override sets registered programmatically.
// It records user intent (inputs to resolution), never resolved names.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates a (nearest named) reflect.Type with an override
	// set. Implementations should be idempotent for identical overrides;
	// conflicting re-registrations return an error.
	Register(t reflect.Type, o OverrideSet) error
	// Lookup returns the override set for a type if present.
	Lookup(t reflect.Type) (o OverrideSet, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type, overrides) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Overrides is the associated override set.
	Overrides OverrideSet
}
