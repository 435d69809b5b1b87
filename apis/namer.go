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

// The interfaces below are the in-code equivalent of schema annotations:
// a type opts into overrides by implementing them. Implementations must be
// cheap, deterministic for a given type, independent of instance state, and
// safe for concurrent use.

// Namer supplies a name override for the implementing type.
type Namer interface {
	// SchemaName returns the record name to use instead of the derived one.
	SchemaName() string
}

// Namespacer supplies a namespace override for the implementing type.
// The returned value is used verbatim, including the empty string, which
// forces an unscoped full name.
type Namespacer interface {
	// SchemaNamespace returns the namespace to use instead of the derived one.
	SchemaNamespace() string
}

// Eraser opts the implementing type out of type-argument encoding.
type Eraser interface {
	// SchemaErased reports whether name derivation ignores type arguments.
	SchemaErased() bool
}
