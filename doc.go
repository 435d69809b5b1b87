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

// Package schemaid derives stable, language-agnostic schema names for Go
// types.
//
// schemaid turns "some Go value or type" into a resolved schema name: a
// namespace, a simple name, and the dotted full name that joins them.
// These names identify record schemas across process and language
// boundaries, so two independent implementations describing the same type
// must produce the same full name. Examples: "com.example.model.User",
// "Pair__Int_String", "com.acme.orders.OrderEvent".
//
// # Design
//
// The core of schemaid is a read-mostly global snapshot (state). The
// snapshot holds five things:
//
//   - Config: rules that control how types are normalized and described
//     (how deep to unwrap pointers/slices/maps, whether builtin types are
//     allowed, how owner paths are normalized into namespaces).
//
//   - Registry: a process-wide mapping from Go types to explicit override
//     sets (custom name, custom namespace, namespace erasure). This is how
//     you force stable names for types you do not own. The registry can be
//     written to at runtime (Register).
//
//   - Extractor: a read-only object that answers "what overrides apply to
//     this value or type?". The extractor tries its sources in priority
//     order:
//     1. If the value implements apis.Namer, apis.Namespacer, or
//     apis.Eraser, those interfaces win.
//     2. If the type is found in the Registry, its override set is used.
//     3. Otherwise no overrides apply and the default naming path runs.
//
//   - FrontEnd: a read-only object that turns a value or reflect.Type into
//     an apis.TypeDescriptor (short name, owner path, type arguments).
//     The built-in runtime front end is reflection-based and memoized.
//     A compile-time front end over loaded source packages lives in
//     frontend/source and produces the same descriptors.
//
//   - Resolver: the pure naming function. Given a descriptor and an
//     override set it always produces an apis.ResolvedName; it never fails
//     and consults no external state. Both front ends share it, so the
//     compile-time and runtime paths cannot drift.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means schemaid lookups are lock-free on the hot path:
//
//	rn, err := schemaid.Of(obj)
//	rn, err = schemaid.OfType(reflect.TypeOf(obj))
//
// and concurrent callers always see a consistent snapshot.
//
// # Naming rules
//
// The resolver composes names as follows:
//
//   - The default name of a plain type is its short name. Generic
//     instantiations flatten one level into "Base__Arg1_Arg2": the base
//     short name, a double-underscore boundary, and the argument short
//     names joined by single underscores.
//
//   - The default namespace is the normalized owner path: local-scope
//     markers are stripped and a trailing ".package" segment is dropped.
//
//   - A name override always wins over the derived name, including the
//     generic encoding. Name erasure drops the type arguments from the
//     name but keeps the namespace. A namespace override is used
//     verbatim, with no normalization.
//
//   - A namespace that is empty or whitespace-only yields a full name
//     equal to the simple name, with no leading dot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Of(v any) (apis.ResolvedName, error)
//     OfType(t reflect.Type) (apis.ResolvedName, error)
//     Resolve(d apis.TypeDescriptor, o apis.OverrideSet) apis.ResolvedName
//     Registry() apis.Registry
//     Extractor() apis.Extractor
//     FrontEnd() apis.FrontEnd
//     Resolver() apis.Resolver
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     Register(t reflect.Type, o apis.OverrideSet) error
//     RegisterName(t reflect.Type, name string) error
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetExtractor(exr apis.Extractor)
//     SetFrontEnd(fe apis.FrontEnd)
//     SetResolver(res apis.Resolver)
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing components as needed), and then
//     atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects how names are computed. Calling SetConfig() may
//     trigger a rebuild of any component that is not explicitly "pinned".
//
//     - Builder controls how the components are constructed. Swapping the
//     Builder lets you replace extraction or naming policy at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     schemaid itself. It is simply passed down to the Builder so custom
//     builders can carry extra policy/state.
//
//     - SetRegistry() / SetExtractor() / SetFrontEnd() / SetResolver()
//     directly overwrite the corresponding component in the snapshot and
//     "pin" it. Once a layer is pinned, schemaid stops rebuilding that
//     layer automatically until the matching Unpin function is called.
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     everything in one shot. This is mainly used by tests to get a
//     clean deterministic state between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Registry().Entries(), etc.
//
// # Concurrency model
//
// Reads (Of, OfType, Resolve, and the component getters) are wait-free:
// they load the current *state atomically and never take locks. The
// components returned by that state must themselves be concurrency-safe
// for reads.
//
// Writes (SetConfig, SetBuilder, SetExt, the component setters, pinning)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let schemaid init with the default builder/config.
//
//  2. Optionally register overrides for types it does not control:
//
//     schemaid.RegisterName(reflect.TypeOf(tp.Thing{}), "Thing")
//     schemaid.Register(reflect.TypeOf(old.Record{}), apis.OverrideSet{
//     Namespace: apis.Some("com.acme.legacy"),
//     })
//
//  3. Use schemaid.Of(...) wherever a schema identity is written out.
//
//  4. In tests, call schemaid.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// # Scope
//
// schemaid is intentionally small. It only solves one job:
//
//	"Given a type, produce the namespace, name, and full name that
//	 identify its schema, identically in every implementation."
//
// Serialization, schema construction, and validation belong to higher
// layers.
package schemaid
