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

package builder

import (
	"dirpx.dev/schemaid/apis"
	"dirpx.dev/schemaid/extractor"
	"dirpx.dev/schemaid/frontend/reflection"
	"dirpx.dev/schemaid/registry"
	"dirpx.dev/schemaid/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its entries are copied
// into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Type, e.Overrides)
		}
	}
	return nreg
}

// BuildExtractor builds and returns a new apis.Extractor over the standard
// source chain: override interfaces first, then the registry.
func (b *builder) BuildExtractor(cfg apis.Config, reg apis.Registry, _ apis.Extractor, _ any) apis.Extractor {
	return extractor.New(
		extractor.NewNamerSource(),
		extractor.NewRegistrySource(reg),
	)
}

// BuildFrontEnd builds and returns a new apis.FrontEnd. The runtime
// reflection front end is memoized per type and configuration.
func (b *builder) BuildFrontEnd(cfg apis.Config, _ apis.FrontEnd, _ any) apis.FrontEnd {
	return reflection.Memoized(reflection.New())
}

// BuildResolver builds and returns a new apis.Resolver based on the provided
// configuration. Resolvers hold no state besides the configuration, so the
// pre-existing resolver is never reused.
func (b *builder) BuildResolver(cfg apis.Config, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(cfg)
}
