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

// Package reflection implements the runtime front end: it describes types
// through the reflect package. Containers are unwrapped to the nearest
// named type, generic instantiations are decomposed into a base name plus
// argument short names, and the package path becomes the dotted owner path.
package reflection

import (
	"errors"
	"reflect"
	"strings"

	"dirpx.dev/schemaid/apis"
	uref "dirpx.dev/schemaid/utils/reflect"
)

var (
	// ErrNilValue is returned when a nil value is described.
	ErrNilValue = errors.New("schemaid(reflection): nil value provided")
	// ErrBuiltinType is returned for builtin/no-package types when the
	// configuration excludes them.
	ErrBuiltinType = errors.New("schemaid(reflection): builtin type excluded by config")
)

// New creates the runtime apis.FrontEnd.
func New() apis.FrontEnd {
	return frontEnd{}
}

// frontEnd derives descriptors from reflect metadata. It is stateless;
// memoization is layered on top via Memoized.
type frontEnd struct{}

// Ensure frontEnd implements apis.FrontEnd.
var _ apis.FrontEnd = frontEnd{}

// Describe builds a descriptor for the dynamic type of v.
func (f frontEnd) Describe(v any, cfg apis.Config) (apis.TypeDescriptor, error) {
	if v == nil {
		return apis.TypeDescriptor{}, ErrNilValue
	}
	return f.DescribeType(reflect.TypeOf(v), cfg)
}

// DescribeType builds a descriptor for t. The type is first normalized to
// its nearest named type; unnamed types are rejected so a descriptor with
// an empty short name can never reach the resolver.
func (frontEnd) DescribeType(t reflect.Type, cfg apis.Config) (apis.TypeDescriptor, error) {
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return apis.TypeDescriptor{}, err
	}

	short, args := splitInstance(base.Name())

	var owner string
	if p := base.PkgPath(); p != "" {
		owner = strings.ReplaceAll(p, "/", ".")
	} else if !cfg.IncludeBuiltins {
		return apis.TypeDescriptor{}, ErrBuiltinType
	}

	d := apis.TypeDescriptor{ShortName: short, OwnerPath: owner}
	for _, a := range args {
		d.TypeArguments = append(d.TypeArguments, apis.TypeDescriptor{ShortName: argShortName(a)})
	}
	return d, nil
}

// splitInstance splits an instantiated generic name like
// "Pair[int,example.com/m.User]" into its base name and raw argument
// strings. Non-generic names pass through unchanged.
func splitInstance(name string) (string, []string) {
	open := strings.IndexByte(name, '[')
	if open < 0 {
		return name, nil
	}
	end := strings.LastIndexByte(name, ']')
	if end < open {
		return name[:open], nil
	}
	return name[:open], splitTopLevel(name[open+1 : end])
}

// splitTopLevel splits a comma-separated argument list, ignoring commas
// inside nested brackets ("M[A,B],C" -> "M[A,B]", "C").
func splitTopLevel(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// argShortName reduces a raw type-argument string to the short name that
// participates in the generic encoding: pointer markers and qualifying
// paths are dropped, and a nested instantiation is flattened to its base
// name (arguments of arguments are never expanded). Composite literals
// ("[]T", "map[K]V", "chan T") keep their shape with qualifiers stripped
// from every name inside, matching how the compile-time front end renders
// the same types with an empty package qualifier.
func argShortName(arg string) string {
	arg = strings.TrimSpace(arg)
	for strings.HasPrefix(arg, "*") {
		arg = arg[1:]
	}
	if isCompositeLiteral(arg) {
		return stripQualifiers(arg)
	}
	if i := instantiationIndex(arg); i >= 0 {
		arg = arg[:i]
	}
	if i := strings.LastIndexByte(arg, '.'); i >= 0 {
		arg = arg[i+1:]
	}
	return arg
}

// isCompositeLiteral reports whether arg is an unnamed composite type
// literal rather than a (possibly instantiated) named type or builtin.
func isCompositeLiteral(arg string) bool {
	return strings.HasPrefix(arg, "[") ||
		strings.HasPrefix(arg, "map[") ||
		strings.HasPrefix(arg, "chan ") ||
		strings.HasPrefix(arg, "chan<-") ||
		strings.HasPrefix(arg, "<-chan") ||
		strings.HasPrefix(arg, "func(") ||
		strings.HasPrefix(arg, "struct{") ||
		strings.HasPrefix(arg, "struct {") ||
		strings.HasPrefix(arg, "interface{") ||
		strings.HasPrefix(arg, "interface {")
}

// stripQualifiers removes package-path qualifiers from every identifier in
// a composite type literal: "map[string]a/b.User" -> "map[string]User".
// Runs of name characters that contain a dot keep only the part after the
// last dot; everything else passes through unchanged.
func stripQualifiers(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if !isNameByte(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && isNameByte(s[j]) {
			j++
		}
		run := s[i:j]
		if k := strings.LastIndexByte(run, '.'); k >= 0 {
			run = run[k+1:]
		}
		b.WriteString(run)
		i = j
	}
	return b.String()
}

// isNameByte reports whether c can appear in a qualified type name
// (identifier characters plus the path separators of an import path).
func isNameByte(c byte) bool {
	return c == '.' || c == '/' || c == '-' || c == '~' || c == '_' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' || c >= 0x80
}

// instantiationIndex returns the index of the bracket opening a generic
// instantiation, or -1 when the brackets belong to a container literal
// ("[]T", "[4]T", "map[K]V", "chan ...").
func instantiationIndex(s string) int {
	i := strings.IndexByte(s, '[')
	if i <= 0 {
		return -1
	}
	switch s[:i] {
	case "map", "chan", "func":
		return -1
	}
	return i
}
