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

// Resolver derives the canonical schema identifier for a described type.
// Implementations must be pure and total: same inputs always yield the same
// output, no I/O, no shared mutable state, safe for unsynchronized
// concurrent use. This keeps resolution cacheable by callers.
type Resolver interface {
	// Resolve computes the identifier for d under overrides o.
	Resolve(d TypeDescriptor, o OverrideSet) ResolvedName
}
