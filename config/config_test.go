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

package config_test

import (
	"strings"
	"testing"

	"dirpx.dev/schemaid/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.IncludeBuiltins != config.DefaultIncludeBuiltins {
		t.Fatalf("IncludeBuiltins = %v, want %v", got.IncludeBuiltins, config.DefaultIncludeBuiltins)
	}
	if got.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want %d", got.MaxUnwrap, config.DefaultMaxUnwrap)
	}
	if got.MapPreferElem != config.DefaultMapPreferElem {
		t.Fatalf("MapPreferElem = %v, want %v", got.MapPreferElem, config.DefaultMapPreferElem)
	}
	if got.OwnerPathNormalizer != nil {
		t.Fatalf("OwnerPathNormalizer = non-nil, want nil (standard normalizer)")
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	// Config is not comparable (it carries a func field); compare knobs.
	if got.IncludeBuiltins != def.IncludeBuiltins ||
		got.MaxUnwrap != def.MaxUnwrap ||
		got.MapPreferElem != def.MapPreferElem ||
		got.OwnerPathNormalizer != nil {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithIncludeBuiltins(t *testing.T) {
	c := config.NewConfig(config.WithIncludeBuiltins(false))
	if c.IncludeBuiltins {
		t.Fatalf("IncludeBuiltins = %v, want false", c.IncludeBuiltins)
	}

	c2 := config.NewConfig(config.WithIncludeBuiltins(true))
	if !c2.IncludeBuiltins {
		t.Fatalf("IncludeBuiltins = %v, want true", c2.IncludeBuiltins)
	}
}

func TestWithMaxUnwrap(t *testing.T) {
	c := config.NewConfig(config.WithMaxUnwrap(3))
	if c.MaxUnwrap != 3 {
		t.Fatalf("MaxUnwrap = %d, want 3", c.MaxUnwrap)
	}

	// Negative resets to default.
	c2 := config.NewConfig(config.WithMaxUnwrap(-1))
	if c2.MaxUnwrap != config.DefaultMaxUnwrap {
		t.Fatalf("MaxUnwrap = %d, want default %d", c2.MaxUnwrap, config.DefaultMaxUnwrap)
	}
}

func TestWithMapPreferElem(t *testing.T) {
	c := config.NewConfig(config.WithMapPreferElem(false))
	if c.MapPreferElem {
		t.Fatalf("MapPreferElem = %v, want false", c.MapPreferElem)
	}
}

func TestWithOwnerPathNormalizer(t *testing.T) {
	upper := func(p string) string { return strings.ToUpper(p) }
	c := config.NewConfig(config.WithOwnerPathNormalizer(upper))
	if c.OwnerPathNormalizer == nil {
		t.Fatal("OwnerPathNormalizer = nil, want custom normalizer")
	}
	if got := c.OwnerPathNormalizer("a.b"); got != "A.B" {
		t.Fatalf("OwnerPathNormalizer(a.b) = %q, want %q", got, "A.B")
	}
}
