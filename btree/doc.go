/*
Package btree implements an ordered set on top of a B-tree of configurable
minimum degree.

A tree of minimum degree t keeps between t−1 and 2t−1 keys in every node
(the root may hold fewer), internal nodes have one child more than they have
keys, and all leaves sit at the same depth.

Insertion splits full nodes proactively on the way down: before descending
into a child that holds 2t−1 keys, the child is split and its median key moves
up into the parent. A full root is split first, which is the only way the
tree grows in height. The descent therefore never has to propagate a split
back up.

Re-inserting an existing key is a no-op. Deletion is not supported.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// assert aborts the current operation on a broken internal invariant. Such a
// breach is a programming error, never a consequence of user input.
func assert(condition bool, msg string) {
	if !condition {
		panic(fmt.Errorf("%w: %s", ErrInvariantViolation, msg))
	}
}
