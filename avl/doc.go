/*
Package avl implements an ordered set on top of an AVL tree.

The tree is balanced by subtree height: for every node the heights of its two
subtrees differ by at most one. Insertion walks back up the search path,
recomputes heights and repairs imbalances with one of four rotation cases
(left-left, right-right, left-right, right-left).

Nodes are kept in an arena and linked by index. Re-inserting an existing key
is a no-op. Deletion is not supported.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

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
