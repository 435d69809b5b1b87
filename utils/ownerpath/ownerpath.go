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

// Package ownerpath normalizes owner paths into default schema namespaces.
//
// Owner paths coming out of a front end may carry scope segments that must
// not leak into a schema namespace: markers for block- or function-local
// declarations, and package-object artifacts that some type systems append
// as a trailing ".package" segment. Normalize strips both. The rule set is
// pattern-based and deliberately pluggable (apis.Config.OwnerPathNormalizer)
// so front ends for other type systems can substitute their own markers
// without touching the resolver.
package ownerpath

import (
	"regexp"
	"strings"
)

// localScope matches a local/anonymous scope marker segment, together with
// the dot that attaches it to the preceding segment when there is one.
var localScope = regexp.MustCompile(`\.?<local [^>]*>`)

// packageSuffix is the trailing segment left behind by package-object scopes.
const packageSuffix = ".package"

// Normalize strips local-scope markers and a trailing package-object
// segment from path. It applies only to derived owner paths; explicit
// namespace overrides bypass normalization entirely.
func Normalize(path string) string {
	p := localScope.ReplaceAllString(path, "")
	p = strings.TrimPrefix(p, ".")
	if p == "package" {
		return ""
	}
	return strings.TrimSuffix(p, packageSuffix)
}
