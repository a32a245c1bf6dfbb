/*
Package treemap implements a persistent (immutable) ordered map, backed by a
self-balancing binary search tree with structural sharing.

The balancing scheme is AVL-like, with a height-difference tolerance of 2
instead of the classic 1. This trades slightly deeper trees for fewer
rotations and is the scheme used by the F# core library's Map.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treemap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fx.treemap'.
func tracer() tracing.Trace {
	return tracing.Select("fx.treemap")
}
