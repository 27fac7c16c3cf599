/*
Package rbtree implements an ordered set on top of a red-black tree.

Every node is colored red or black such that the root is black, no red node
has a red child, and every path from a node down to a leaf passes through the
same number of black nodes. Together these bound the height of a tree of n
keys by 2·log2(n+1).

Nodes live in an arena and are linked by index, including the parent
back-reference used while fixing up after an insertion. Index arena.Nil
doubles as the shared leaf sentinel: it is always black and is never written.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(fmt.Errorf("%w: %s", ErrInvariantViolation, msg))
	}
}
