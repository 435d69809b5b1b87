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

// FrontEnd produces type descriptors from some type representation.
// The runtime implementation walks reflect metadata; a compile-time
// implementation walks go/types. Both must agree on descriptor shape so
// a single Resolver serves them identically.
//
// A front end fails fast on types it cannot name (unnamed types, or
// builtins when the configuration excludes them) rather than let a
// malformed descriptor reach the resolver.
type FrontEnd interface {
	// Describe builds a descriptor for the dynamic type of v.
	Describe(v any, cfg Config) (TypeDescriptor, error)

	// DescribeType builds a descriptor for t.
	DescribeType(t reflect.Type, cfg Config) (TypeDescriptor, error)
}
