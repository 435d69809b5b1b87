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

// Package resolver derives canonical schema identifiers from type
// descriptors and override sets. Resolution is pure string computation with
// no failure conditions; every front end shares this one implementation so
// compile-time and runtime paths can never drift apart.
package resolver

import (
	"strings"

	"dirpx.dev/schemaid/apis"
	"dirpx.dev/schemaid/utils/ownerpath"
)

// argumentBoundary separates the base name from the encoded parameter list.
const argumentBoundary = "__"

// argumentSeparator separates the parameter short names from each other.
const argumentSeparator = "_"

// New constructs an apis.Resolver for cfg. A nil cfg.OwnerPathNormalizer
// selects ownerpath.Normalize. The returned resolver is an immutable value,
// safe for unsynchronized concurrent use.
func New(cfg apis.Config) apis.Resolver {
	n := cfg.OwnerPathNormalizer
	if n == nil {
		n = ownerpath.Normalize
	}
	return resolver{normalize: n}
}

// resolver applies the derivation rules:
//
//	namespace: override verbatim, else normalized OwnerPath
//	name:      override, else ShortName when erased, else generic encoding
//	fullName:  name alone when the namespace is blank, else dotted join
type resolver struct {
	normalize func(string) string
}

// Ensure resolver implements apis.Resolver.
var _ apis.Resolver = resolver{}

// Resolve computes the identifier for d under overrides o.
// It is total: every input yields a ResolvedName.
func (r resolver) Resolve(d apis.TypeDescriptor, o apis.OverrideSet) apis.ResolvedName {
	namespace := r.normalize(d.OwnerPath)
	if o.Namespace.OK {
		// Explicit overrides bypass normalization entirely.
		namespace = o.Namespace.Value
	}

	name := genericName(d)
	if o.Erased {
		name = d.ShortName
	}
	if o.Name.OK {
		// A name override always wins, erased or not.
		name = o.Name.Value
	}

	full := name
	if strings.TrimSpace(namespace) != "" {
		full = namespace + "." + name
	}

	return apis.ResolvedName{
		Namespace: namespace,
		Name:      name,
		FullName:  full,
	}
}

// genericName encodes the type arguments into the name: "Pair__Int_String".
// Arguments contribute their short names only, in declaration order; nested
// arguments of the arguments are not expanded further.
func genericName(d apis.TypeDescriptor) string {
	if len(d.TypeArguments) == 0 {
		return d.ShortName
	}
	parts := make([]string, len(d.TypeArguments))
	for i, arg := range d.TypeArguments {
		parts[i] = arg.ShortName
	}
	return d.ShortName + argumentBoundary + strings.Join(parts, argumentSeparator)
}
