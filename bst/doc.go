/*
Package bst implements an ordered set on top of a plain, unbalanced binary
search tree.

The tree serves as the baseline the balanced engines are measured against:
insertion order fully determines its shape, and ascending input degenerates
it into a list. Re-inserting an existing key is a no-op.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

import "errors"

// ErrInvariantViolation signals a broken search-order invariant.
var ErrInvariantViolation = errors.New("bst: invariant violation")
