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

// TypeDescriptor is an immutable description of a type, as produced by a
// front end. ShortName must be non-empty; front ends are responsible for
// rejecting types they cannot name (the resolver never validates).
type TypeDescriptor struct {
	// ShortName is the bare type name without scope qualifiers or
	// type arguments (e.g. "Pair" for Pair[int,string]).
	ShortName string

	// OwnerPath is the dotted path of the enclosing scope. It may be empty
	// for top-level unscoped types (builtins).
	OwnerPath string

	// TypeArguments holds one descriptor per type argument, in declaration
	// order. Empty for non-generic types. Only each argument's ShortName
	// participates in name derivation; nested arguments are not expanded.
	TypeArguments []TypeDescriptor
}

// ResolvedName is the canonical schema identifier computed for a type.
// It has no identity beyond its fields; two resolutions with equal fields
// are interchangeable.
type ResolvedName struct {
	// Namespace is the dotted scope prefix. It may be empty.
	Namespace string

	// Name is the record name. It is never empty for well-formed input.
	Name string

	// FullName is Name when Namespace is blank, else Namespace + "." + Name.
	FullName string
}

// String returns the full dotted identifier.
func (r ResolvedName) String() string {
	return r.FullName
}
