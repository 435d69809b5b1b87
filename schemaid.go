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

package schemaid

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/schemaid/apis"
	"dirpx.dev/schemaid/builder"
	"dirpx.dev/schemaid/config"
)

// init initializes the global schemaid state.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil, nil)
	s.exr = s.bld.BuildExtractor(s.cfg, s.reg, nil, nil)
	s.fe = s.bld.BuildFrontEnd(s.cfg, nil, nil)
	s.res = s.bld.BuildResolver(s.cfg, nil, nil)
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("schemaid: builder returned nil registry")
	// ErrNilExtractor is returned when a builder returns a nil extractor.
	ErrNilExtractor = errors.New("schemaid: builder returned nil extractor")
	// ErrNilFrontEnd is returned when a builder returns a nil front end.
	ErrNilFrontEnd = errors.New("schemaid: builder returned nil front end")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("schemaid: builder returned nil resolver")
)

// Of resolves the schema name of the provided value v using the global
// schemaid state: the front end describes the type, the extractor collects
// its overrides, and the resolver composes the final name.
// This is a convenience wrapper around the global components.
func Of(v any) (apis.ResolvedName, error) {
	s := st.Load()
	d, err := s.fe.Describe(v, s.cfg)
	if err != nil {
		return apis.ResolvedName{}, err
	}
	return s.res.Resolve(d, s.exr.Extract(v, s.cfg)), nil
}

// OfType resolves the schema name of the provided reflect.Type t using the
// global schemaid state.
// This is a convenience wrapper around the global components.
func OfType(t reflect.Type) (apis.ResolvedName, error) {
	s := st.Load()
	d, err := s.fe.DescribeType(t, s.cfg)
	if err != nil {
		return apis.ResolvedName{}, err
	}
	return s.res.Resolve(d, s.exr.ExtractType(t, s.cfg)), nil
}

// Resolve composes a resolved name from an explicit descriptor and override
// set using the global schemaid resolver. It never fails: every descriptor
// resolves to a name.
func Resolve(d apis.TypeDescriptor, o apis.OverrideSet) apis.ResolvedName {
	return st.Load().res.Resolve(d, o)
}

// Register adds a type-override mapping to the global schemaid registry.
// This is a convenience wrapper around the global registry.
func Register(t reflect.Type, o apis.OverrideSet) error {
	return st.Load().reg.Register(t, o)
}

// RegisterName adds a plain name override for t to the global schemaid
// registry.
func RegisterName(t reflect.Type, name string) error {
	return Register(t, apis.OverrideSet{Name: apis.Some(name)})
}

// SetAll explicitly sets all global schemaid state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, exr apis.Extractor, fe apis.FrontEnd, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Extractor
	nexr := exr
	npexr := false
	if nexr == nil {
		nexr = nbld.BuildExtractor(ncfg, nreg, old.exr, next)
	} else {
		npexr = true
	}

	// Front end
	nfe := fe
	npfe := false
	if nfe == nil {
		nfe = nbld.BuildFrontEnd(ncfg, old.fe, next)
	} else {
		npfe = true
	}

	// Resolver
	nres := res
	npres := false
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, old.res, next)
	} else {
		npres = true
	}

	ensure(nreg, nexr, nfe, nres)

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			exr:  nexr,
			fe:   nfe,
			res:  nres,
			bld:  nbld,
			preg: npreg,
			pexr: npexr,
			pfe:  npfe,
			pres: npres,
		},
	)
}

// Config returns the global schemaid configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global schemaid configuration to cfg.
// It rebuilds the non-pinned global components using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, cfg, old.ext, old.bld))
}

// Registry returns the global schemaid registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global schemaid registry to reg and pins it.
// The extractor is rebuilt over the new registry unless it is pinned.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build a new extractor over the new registry.
	nexr := old.exr
	if !old.pexr {
		nexr = b.BuildExtractor(old.cfg, reg, old.exr, old.ext)
	}

	// Ensure a non-nil extractor.
	if nexr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			exr:  nexr,
			fe:   old.fe,
			res:  old.res,
			bld:  b,
			preg: true,
			pexr: old.pexr,
			pfe:  old.pfe,
			pres: old.pres,
		},
	)
}

// Extractor returns the global schemaid extractor.
func Extractor() apis.Extractor {
	return st.Load().exr
}

// SetExtractor sets the global schemaid extractor to exr and pins it.
// This is a convenience wrapper around the global state.
func SetExtractor(exr apis.Extractor) {
	if exr == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(old.with(func(s *state) {
		s.exr = exr
		s.pexr = true
	}))
}

// FrontEnd returns the global schemaid front end.
func FrontEnd() apis.FrontEnd {
	return st.Load().fe
}

// SetFrontEnd sets the global schemaid front end to fe and pins it.
// This is a convenience wrapper around the global state.
func SetFrontEnd(fe apis.FrontEnd) {
	if fe == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(old.with(func(s *state) {
		s.fe = fe
		s.pfe = true
	}))
}

// Resolver returns the global schemaid resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global schemaid resolver to res and pins it.
// This is a convenience wrapper around the global state.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(old.with(func(s *state) {
		s.res = res
		s.pres = true
	}))
}

// Builder returns the global schemaid builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global schemaid builder to b.
// It rebuilds the non-pinned global components using the new builder.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, old.cfg, old.ext, b))
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, old.cfg, ext, old.bld))
}

// ExtAs returns the global schemaid extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global registry immutable.
func PinRegistry() { setPin(func(s *state) { s.preg = true }) }

// UnpinRegistry makes the global registry mutable again.
func UnpinRegistry() { setPin(func(s *state) { s.preg = false }) }

// IsExtractorPinned returns whether the global extractor is pinned (immutable).
func IsExtractorPinned() bool {
	return st.Load().pexr
}

// PinExtractor makes the global extractor immutable.
func PinExtractor() { setPin(func(s *state) { s.pexr = true }) }

// UnpinExtractor makes the global extractor mutable again.
func UnpinExtractor() { setPin(func(s *state) { s.pexr = false }) }

// IsFrontEndPinned returns whether the global front end is pinned (immutable).
func IsFrontEndPinned() bool {
	return st.Load().pfe
}

// PinFrontEnd makes the global front end immutable.
func PinFrontEnd() { setPin(func(s *state) { s.pfe = true }) }

// UnpinFrontEnd makes the global front end mutable again.
func UnpinFrontEnd() { setPin(func(s *state) { s.pfe = false }) }

// IsResolverPinned returns whether the global resolver is pinned (immutable).
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver makes the global resolver immutable.
func PinResolver() { setPin(func(s *state) { s.pres = true }) }

// UnpinResolver makes the global resolver mutable again.
func UnpinResolver() { setPin(func(s *state) { s.pres = false }) }

// setPin publishes a copy of the current state with a pin flag flipped.
func setPin(mut func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(st.Load().with(mut))
}

// rebuild creates a new state from old with the given configuration,
// extension, and builder, rebuilding every non-pinned component in
// dependency order: registry, extractor, front end, resolver.
func rebuild(old *state, cfg apis.Config, ext any, b apis.Builder) *state {
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, ext)
	}
	nexr := old.exr
	if !old.pexr {
		nexr = b.BuildExtractor(cfg, nreg, old.exr, ext)
	}
	nfe := old.fe
	if !old.pfe {
		nfe = b.BuildFrontEnd(cfg, old.fe, ext)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, old.res, ext)
	}

	ensure(nreg, nexr, nfe, nres)

	return &state{
		cfg:  cfg,
		ext:  ext,
		reg:  nreg,
		exr:  nexr,
		fe:   nfe,
		res:  nres,
		bld:  b,
		preg: old.preg,
		pexr: old.pexr,
		pfe:  old.pfe,
		pres: old.pres,
	}
}

// ensure panics when a builder produced a nil component. A nil component
// would make every later Of call panic anyway; failing at swap time keeps
// the published snapshot usable.
func ensure(reg apis.Registry, exr apis.Extractor, fe apis.FrontEnd, res apis.Resolver) {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	if exr == nil {
		panic(ErrNilExtractor)
	}
	if fe == nil {
		panic(ErrNilFrontEnd)
	}
	if res == nil {
		panic(ErrNilResolver)
	}
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global schemaid state.
var st atomic.Pointer[state]

// state is the global schemaid state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global schemaid configuration.
	cfg apis.Config
	// ext is the global schemaid extension configuration.
	ext any
	// reg is the global override registry.
	reg apis.Registry
	// exr is the global override extractor.
	exr apis.Extractor
	// fe is the global runtime front end.
	fe apis.FrontEnd
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether the registry is pinned (immutable).
	preg bool
	// pexr indicates whether the extractor is pinned (immutable).
	pexr bool
	// pfe indicates whether the front end is pinned (immutable).
	pfe bool
	// pres indicates whether the resolver is pinned (immutable).
	pres bool
}

// with returns a copy of s mutated by mut. The receiver is never modified.
func (s *state) with(mut func(*state)) *state {
	ns := *s
	mut(&ns)
	return &ns
}
