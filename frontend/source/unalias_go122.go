//go:build go1.22

package source

import "go/types"

// unalias resolves alias types to their actual type.
func unalias(t types.Type) types.Type { return types.Unalias(t) }
