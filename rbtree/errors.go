package rbtree

import "errors"

// ErrInvariantViolation signals a broken red-black tree invariant.
var ErrInvariantViolation = errors.New("rbtree: invariant violation")
