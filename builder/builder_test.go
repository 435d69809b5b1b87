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

package builder_test

import (
	"reflect"
	"runtime"
	"strings"
	"sync"
	"testing"

	apis "dirpx.dev/schemaid/apis"
	"dirpx.dev/schemaid/builder"
	"dirpx.dev/schemaid/config"
	"dirpx.dev/schemaid/registry"
)

// userType is a plain named type with no special behavior.
// It is used to test the default resolution path.
type userType struct{}

// hotType implements apis.Namer and is used to verify that the
// interface-based override source takes priority over the registry.
type hotType struct{}

func (hotType) SchemaName() string { return "hot-name" }

// defaultCfg returns a sane configuration for tests.
// It should match what a real process would use for normalization.
func defaultCfg() apis.Config {
	return apis.Config{
		IncludeBuiltins: true,
		MapPreferElem:   true,
		MaxUnwrap:       8,
	}
}

// TestBuildRegistry_Basic asserts that BuildRegistry returns a non-nil,
// working Registry that supports Register/Lookup/Entries/Count.
func TestBuildRegistry_Basic(t *testing.T) {
	b := builder.New()

	// prev may be nil; this must still produce a valid registry.
	reg := b.BuildRegistry(defaultCfg(), nil, nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}

	tt := reflect.TypeOf(userType{})
	if err := reg.Register(tt, apis.OverrideSet{Name: apis.Some("userType")}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if got, ok := reg.Lookup(tt); !ok || got.Name.Value != "userType" {
		t.Fatalf("Lookup mismatch: ok=%v got=%+v want name %q", ok, got, "userType")
	}

	if c := reg.Count(); c < 1 {
		t.Fatalf("Count too small: %d", c)
	}

	snap := reg.Entries()
	if len(snap) < 1 {
		t.Fatalf("Entries returned empty snapshot")
	}
}

// TestBuildRegistry_MigratesEntries asserts that entries of a pre-existing
// registry survive a rebuild.
func TestBuildRegistry_MigratesEntries(t *testing.T) {
	b := builder.New()
	cfg := defaultCfg()

	old := b.BuildRegistry(cfg, nil, nil)
	tt := reflect.TypeOf(userType{})
	if err := old.Register(tt, apis.OverrideSet{Name: apis.Some("migrated")}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	fresh := b.BuildRegistry(cfg, old, nil)
	if got, ok := fresh.Lookup(tt); !ok || got.Name.Value != "migrated" {
		t.Fatalf("migrated Lookup mismatch: ok=%v got=%+v", ok, got)
	}
}

// TestBuildExtractor_Order_NamerThenRegistry verifies extraction priority:
// 1. If the value implements apis.Namer, use SchemaName().
// 2. Otherwise, if the type is registered in the Registry, use that.
// 3. Otherwise, nothing is extracted and the default path applies.
func TestBuildExtractor_Order_NamerThenRegistry(t *testing.T) {
	b := builder.New()
	cfg := defaultCfg()

	reg := b.BuildRegistry(cfg, nil, nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}

	// Register a type so the registry source can pick it up.
	type fromRegistry struct{}
	ttReg := reflect.TypeOf(fromRegistry{})
	if err := reg.Register(ttReg, apis.OverrideSet{Name: apis.Some("reg-name")}); err != nil {
		t.Fatalf("Register(fromRegistry) failed: %v", err)
	}
	// The Namer interface still wins even when the type is also registered.
	if err := reg.Register(reflect.TypeOf(hotType{}), apis.OverrideSet{Name: apis.Some("cold-name")}); err != nil {
		t.Fatalf("Register(hotType) failed: %v", err)
	}

	exr := b.BuildExtractor(cfg, reg, nil, nil)
	if exr == nil {
		t.Fatal("BuildExtractor returned nil")
	}

	// (1) Namer should win.
	got := exr.Extract(hotType{}, cfg)
	if got.Name.Value != "hot-name" {
		t.Fatalf("Namer priority broken: got %q want %q", got.Name.Value, "hot-name")
	}

	// (2) Registry should be next.
	got = exr.ExtractType(ttReg, cfg)
	if got.Name.Value != "reg-name" {
		t.Fatalf("registry source broken: got %q want %q", got.Name.Value, "reg-name")
	}

	// (3) Unregistered plain types extract nothing.
	got = exr.ExtractType(reflect.TypeOf(userType{}), cfg)
	if !got.IsZero() {
		t.Fatalf("expected empty overrides for plain type, got %+v", got)
	}
}

// TestBuildExtractor_WithExternalRegistry asserts that BuildExtractor will
// accept *any* apis.Registry implementation (not only the one created by
// this builder), and still surface overrides from it.
func TestBuildExtractor_WithExternalRegistry(t *testing.T) {
	// Create a registry directly using the package's public New().
	r := registry.New(config.DefaultConfig())

	if err := r.Register(reflect.TypeOf(userType{}), apis.OverrideSet{Name: apis.Some("u")}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	exr := builder.New().BuildExtractor(defaultCfg(), r, nil, nil)
	if exr == nil {
		t.Fatal("BuildExtractor returned nil")
	}

	got := exr.ExtractType(reflect.TypeOf(userType{}), defaultCfg())
	if got.Name.Value != "u" {
		t.Fatalf("extractor did not use registry mapping: got %q want %q", got.Name.Value, "u")
	}
}

// TestBuildFrontEndAndResolver_EndToEnd runs a described type through both
// built components and checks the composed full name.
func TestBuildFrontEndAndResolver_EndToEnd(t *testing.T) {
	b := builder.New()
	cfg := defaultCfg()

	fe := b.BuildFrontEnd(cfg, nil, nil)
	if fe == nil {
		t.Fatal("BuildFrontEnd returned nil")
	}
	res := b.BuildResolver(cfg, nil, nil)
	if res == nil {
		t.Fatal("BuildResolver returned nil")
	}

	d, err := fe.Describe(userType{}, cfg)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	rn := res.Resolve(d, apis.OverrideSet{})
	if rn.Name != "userType" {
		t.Fatalf("Name = %q, want %q", rn.Name, "userType")
	}
	if strings.TrimSpace(rn.Namespace) == "" || !strings.Contains(rn.Namespace, ".") {
		t.Fatalf("namespace missing package path: %q", rn.Namespace)
	}
	if rn.FullName != rn.Namespace+"."+rn.Name {
		t.Fatalf("FullName = %q, want %q", rn.FullName, rn.Namespace+"."+rn.Name)
	}
}

// TestBuiltComponents_Concurrency_Smoke hammers the built components in
// parallel to ensure they are safe to use concurrently after being built.
func TestBuiltComponents_Concurrency_Smoke(t *testing.T) {
	b := builder.New()
	cfg := defaultCfg()

	reg := b.BuildRegistry(cfg, nil, nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}

	// Pre-register some names so the registry source and the namer source
	// both get exercised under contention.
	_ = reg.Register(reflect.TypeOf(userType{}), apis.OverrideSet{Name: apis.Some("userType")})
	_ = reg.Register(reflect.TypeOf(hotType{}), apis.OverrideSet{Name: apis.Some("hotType")})

	exr := b.BuildExtractor(cfg, reg, nil, nil)
	fe := b.BuildFrontEnd(cfg, nil, nil)
	res := b.BuildResolver(cfg, nil, nil)

	types := []reflect.Type{
		reflect.TypeOf(userType{}),
		reflect.TypeOf(hotType{}),
		reflect.TypeOf(&userType{}),
		reflect.TypeOf([]userType{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				tt := types[(i+id)%len(types)]
				d, err := fe.DescribeType(tt, cfg)
				if err != nil {
					continue
				}
				_ = res.Resolve(d, exr.ExtractType(tt, cfg))
				_ = exr.Extract(hotType{}, cfg)
			}
		}(w)
	}

	wg.Wait()
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
