/*
Package bench measures and compares the tree engines of package ordtrees.

A run draws a reproducible set of random keys, inserts them into every
configured engine, times a number of random searches and validates each
engine's invariants. Results are returned and, if a broadcaster is given,
published one by one as they become available.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bench

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
