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

// Package source implements the compile-time front end: it describes types
// by loading Go packages and walking go/types metadata, and reads override
// directives from type doc comments. It produces the same descriptor shape
// as the runtime front end, so both share one resolver and cannot drift.
package source

import (
	"context"
	"errors"
	"go/types"
	"strings"

	"github.com/thorn-jmh/errorst"
	"golang.org/x/tools/go/packages"

	"dirpx.dev/schemaid/apis"
)

var (
	// ErrNoPackages is returned when Load is called without package patterns.
	ErrNoPackages = errors.New("schemaid(source): no packages specified")
	// ErrNilType is returned when a nil types.Type is described.
	ErrNilType = errors.New("schemaid(source): nil type provided")
	// ErrNotNamed indicates the described type has no name to derive from.
	ErrNotNamed = errors.New("schemaid(source): type has no named base")
	// ErrBuiltinType is returned for universe-scope types when the
	// configuration excludes them.
	ErrBuiltinType = errors.New("schemaid(source): builtin type excluded by config")
)

// Options configures compile-time extraction.
type Options struct {
	// Packages are the Go package patterns to analyze.
	Packages []string

	// RootTypes are the type names to extract (e.g., "User", "OrderEvent").
	// If empty, all exported named types in the packages are extracted.
	RootTypes []string

	// Dir is the working directory for package loading. Empty means the
	// current directory.
	Dir string
}

// Entry is one described type: its Go name, its descriptor, and the
// overrides read from its doc-comment directives.
type Entry struct {
	TypeName   string
	Descriptor apis.TypeDescriptor
	Overrides  apis.OverrideSet
}

func (Options) loadMode() packages.LoadMode {
	return packages.NeedName |
		packages.NeedFiles |
		packages.NeedCompiledGoFiles |
		packages.NeedImports |
		packages.NeedTypes |
		packages.NeedSyntax |
		packages.NeedTypesInfo
}

// Load analyzes source code and returns an Entry per selected type.
// The descriptor/override pairs are inputs for a Resolver; Load itself
// resolves nothing.
func Load(ctx context.Context, cfg apis.Config, opts Options) ([]Entry, error) {
	if len(opts.Packages) == 0 {
		return nil, ErrNoPackages
	}

	pcfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode:    opts.loadMode(),
	}
	pkgs, err := packages.Load(pcfg, opts.Packages...)
	if err != nil {
		return nil, errorst.NewError("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errorst.NewError("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, errorst.NewError("no packages found for %v", opts.Packages)
	}

	if len(opts.RootTypes) > 0 {
		return loadRoots(pkgs, cfg, opts.RootTypes)
	}
	return loadExported(pkgs, cfg)
}

// loadRoots extracts the explicitly requested type names.
func loadRoots(pkgs []*packages.Package, cfg apis.Config, roots []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(roots))
	for _, root := range roots {
		obj := lookupTypeName(pkgs, root)
		if obj == nil {
			return nil, errorst.NewError("type %s not found in any package", root)
		}
		e, err := describeObject(pkgs, obj, cfg)
		if err != nil {
			return nil, errorst.Wrap(err, "failed to describe root type %s", root)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// loadExported extracts every exported named type, in scope order.
func loadExported(pkgs []*packages.Package, cfg apis.Config) ([]Entry, error) {
	var entries []Entry
	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !obj.Exported() {
				continue
			}
			e, err := describeObject(pkgs, obj, cfg)
			if err != nil {
				// Exported aliases of unnamed types carry no schema identity.
				continue
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// lookupTypeName finds a *types.TypeName by name across the loaded packages.
func lookupTypeName(pkgs []*packages.Package, name string) *types.TypeName {
	for _, pkg := range pkgs {
		if obj, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName); ok {
			return obj
		}
	}
	return nil
}

// describeObject builds the Entry for a declared type: descriptor from the
// type, overrides from the declaration's doc comments.
func describeObject(pkgs []*packages.Package, obj *types.TypeName, cfg apis.Config) (Entry, error) {
	d, err := DescribeType(obj.Type(), cfg)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		TypeName:   obj.Name(),
		Descriptor: d,
		Overrides:  overridesOf(pkgs, obj),
	}, nil
}

// DescribeType builds a descriptor for a go/types type. Aliases are
// resolved first; pointer wrappers are unwrapped. Only named types and
// universe-scope basics can be described.
func DescribeType(t types.Type, cfg apis.Config) (apis.TypeDescriptor, error) {
	if t == nil {
		return apis.TypeDescriptor{}, ErrNilType
	}
	t = unalias(t)
	for {
		p, ok := t.(*types.Pointer)
		if !ok {
			break
		}
		t = unalias(p.Elem())
	}

	switch t := t.(type) {
	case *types.Named:
		obj := t.Obj()
		d := apis.TypeDescriptor{ShortName: obj.Name()}
		if pkg := obj.Pkg(); pkg != nil {
			d.OwnerPath = strings.ReplaceAll(pkg.Path(), "/", ".")
		} else if !cfg.IncludeBuiltins {
			return apis.TypeDescriptor{}, ErrBuiltinType
		}
		args := t.TypeArgs()
		for i := 0; args != nil && i < args.Len(); i++ {
			d.TypeArguments = append(d.TypeArguments, apis.TypeDescriptor{
				ShortName: shortTypeName(args.At(i)),
			})
		}
		return d, nil

	case *types.Basic:
		if !cfg.IncludeBuiltins {
			return apis.TypeDescriptor{}, ErrBuiltinType
		}
		return apis.TypeDescriptor{ShortName: t.Name()}, nil

	default:
		return apis.TypeDescriptor{}, ErrNotNamed
	}
}

// shortTypeName reduces a type argument to the short name used by the
// generic encoding. Nested instantiations flatten to their base name;
// unnamed composites render the same literal form the runtime front end
// sees ("[]int", "map[string]int").
func shortTypeName(t types.Type) string {
	t = unalias(t)
	for {
		p, ok := t.(*types.Pointer)
		if !ok {
			break
		}
		t = unalias(p.Elem())
	}

	switch t := t.(type) {
	case *types.Named:
		return t.Obj().Name()
	case *types.TypeParam:
		return t.Obj().Name()
	case *types.Basic:
		return t.Name()
	default:
		return types.TypeString(t, func(*types.Package) string { return "" })
	}
}
