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

package reflection

import (
	"reflect"
	"sync"

	"dirpx.dev/schemaid/apis"
)

// Memoized wraps fe with a per-(type, config knobs) descriptor cache.
// Describing a type is deterministic, so caching is safe; the resolver
// itself stays uncached and pure. The cache never evicts: its keyspace is
// bounded by the program's type population.
func Memoized(fe apis.FrontEnd) apis.FrontEnd {
	return &memoized{fe: fe}
}

// memoKey ensures memoization respects all config knobs that affect
// description. The owner-path normalizer is irrelevant here: it runs in
// the resolver, not in the front end.
type memoKey struct {
	t              reflect.Type
	includeBuiltin bool
	maxUnwrap      int
	mapPreferElem  bool
}

// memoVal caches both outcomes so failing types do not re-run description.
type memoVal struct {
	d   apis.TypeDescriptor
	err error
}

type memoized struct {
	fe    apis.FrontEnd
	cache sync.Map // key: memoKey, val: memoVal
}

// Ensure memoized implements apis.FrontEnd.
var _ apis.FrontEnd = (*memoized)(nil)

// Describe delegates to DescribeType for the dynamic type of v.
func (m *memoized) Describe(v any, cfg apis.Config) (apis.TypeDescriptor, error) {
	if v == nil {
		return m.fe.Describe(v, cfg) // let the wrapped front end report the error
	}
	return m.DescribeType(reflect.TypeOf(v), cfg)
}

// DescribeType returns the cached descriptor for t, computing it once per
// (type, knobs) combination.
func (m *memoized) DescribeType(t reflect.Type, cfg apis.Config) (apis.TypeDescriptor, error) {
	key := memoKey{
		t:              t,
		includeBuiltin: cfg.IncludeBuiltins,
		maxUnwrap:      cfg.MaxUnwrap,
		mapPreferElem:  cfg.MapPreferElem,
	}
	if v, ok := m.cache.Load(key); ok {
		mv := v.(memoVal)
		return mv.d, mv.err
	}

	d, err := m.fe.DescribeType(t, cfg)
	m.cache.Store(key, memoVal{d: d, err: err})
	return d, err
}
