/*
Package treeviz renders tree shapes for debugging and teaching purposes.

Engines are converted into a neutral display tree (see Node), which may then
be written as a Graphviz DOT digraph, as a nested HTML list, or printed to a
console with colors.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package treeviz

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
