//go:build !go1.22

package source

import "go/types"

// unalias resolves alias types to their actual type. Before go1.22 the
// type checker never materializes alias types (types.Alias does not
// exist), so resolution is the identity.
func unalias(t types.Type) types.Type { return t }
