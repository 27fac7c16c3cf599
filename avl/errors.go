package avl

import "errors"

// ErrInvariantViolation signals a broken AVL tree invariant.
var ErrInvariantViolation = errors.New("avl: invariant violation")
