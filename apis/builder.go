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

// Builder composes the resolution layers from a Config.
// Implementations may migrate state from previous instances (prev*), or
// ignore them. ext is an optional extension context passed through on
// every rebuild; its meaning is implementation-defined.
type Builder interface {
	// BuildRegistry constructs a Registry for Config. May migrate entries
	// from a previous registry.
	BuildRegistry(cfg Config, prev Registry, ext any) Registry
	// BuildExtractor constructs an Extractor over Registry for Config.
	// May reuse state from a previous extractor.
	BuildExtractor(cfg Config, reg Registry, prev Extractor, ext any) Extractor
	// BuildFrontEnd constructs the runtime FrontEnd for Config.
	BuildFrontEnd(cfg Config, prev FrontEnd, ext any) FrontEnd
	// BuildResolver constructs a Resolver for Config.
	BuildResolver(cfg Config, prev Resolver, ext any) Resolver
}
