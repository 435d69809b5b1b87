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

// Package reflect locates the nearest named type inside container types.
// The registry and the runtime front end both key their work on the result,
// so container wrappers (pointers, slices, maps) never produce distinct
// schema identities from their element type.
package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/schemaid/apis"
	"dirpx.dev/schemaid/config"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("schemaid(reflect): nil reflect.Type provided")
	// ErrNotNamed indicates that the provided type (after unwrapping
	// containers) contains no named type (e.g., anonymous struct, func,
	// interface{}).
	ErrNotNamed = errors.New("schemaid(reflect): type has no named base")
)

// Normalize unwraps containers according to cfg (MaxUnwrap/MapPreferElem)
// and returns the nearest named inner type.
//
// Unwrapping policy:
//   - ptr/slice/array/chan -> Elem()
//   - map[K]V: the preferred side (Elem if MapPreferElem, otherwise Key)
//     is taken when named; otherwise the other side; if neither side is
//     named, unwrapping continues through Elem().
//   - anything else: returned when named, ErrNotNamed otherwise.
//
// A non-positive MaxUnwrap falls back to config.DefaultMaxUnwrap.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	budget := cfg.MaxUnwrap
	if budget <= 0 {
		budget = config.DefaultMaxUnwrap
	}

	for step := 0; step < budget && t != nil; step++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			if side, ok := namedMapSide(t, cfg.MapPreferElem); ok {
				return side, nil
			}
			// Neither side named: keep unwrapping the element.
			t = t.Elem()

		default:
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrNotNamed
		}
	}

	// Budget exhausted; accept only if we landed on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrNotNamed
}

// namedMapSide picks the first named side of a map type, honoring the
// configured preference order.
func namedMapSide(t reflect.Type, preferElem bool) (reflect.Type, bool) {
	first, second := t.Key(), t.Elem()
	if preferElem {
		first, second = second, first
	}
	if first != nil && first.Name() != "" {
		return first, true
	}
	if second != nil && second.Name() != "" {
		return second, true
	}
	return nil, false
}
