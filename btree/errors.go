package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrNilTree signals an operation on a nil tree.
	ErrNilTree = errors.New("btree: tree is nil")
	// ErrInvariantViolation signals a broken structural invariant, either
	// detected by Check or raised (as a panic) from inside a mutation.
	ErrInvariantViolation = errors.New("btree: invariant violation")
)
