/*
Package arena provides a growable table of tree nodes, addressed by stable
integer indices.

Binary tree engines keep their nodes in an Arena and link them by Index
instead of by pointer. Slot 0 is reserved: Index Nil denotes "no node". Its
slot holds the zero value of the node type and is never handed out for
writing, which lets red-black trees use it as the shared black sentinel.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

import "fmt"

// Index addresses a slot in an Arena.
type Index uint32

// Nil is the reserved "no node" index.
const Nil Index = 0

// Arena is a slice-backed node table. Nodes are never freed individually.
//
// Pointers obtained via At are valid only until the next call to Alloc.
type Arena[T any] struct {
	slots []T
}

// New creates an arena with room for sizeHint nodes.
func New[T any](sizeHint int) *Arena[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Arena[T]{slots: make([]T, 1, sizeHint+1)}
}

// Alloc stores v in a fresh slot and returns its index.
func (a *Arena[T]) Alloc(v T) Index {
	if len(a.slots) == 0 {
		a.slots = make([]T, 1, 16)
	}
	a.slots = append(a.slots, v)
	return Index(len(a.slots) - 1)
}

// At returns a pointer to the node at index i.
// Writing through the pointer returned for Nil is forbidden.
func (a *Arena[T]) At(i Index) *T {
	if int(i) >= len(a.slots) {
		panic(fmt.Sprintf("arena: index %d out of range [0,%d)", i, len(a.slots)))
	}
	return &a.slots[i]
}

// Get returns a copy of the node at index i.
func (a *Arena[T]) Get(i Index) T {
	return *a.At(i)
}

// Len returns the number of allocated nodes, not counting the Nil slot.
func (a *Arena[T]) Len() int {
	if len(a.slots) == 0 {
		return 0
	}
	return len(a.slots) - 1
}

// Reset drops all nodes but keeps the allocated capacity.
func (a *Arena[T]) Reset() {
	var zero T
	if len(a.slots) == 0 {
		a.slots = make([]T, 1, 16)
	}
	a.slots = a.slots[:1]
	a.slots[0] = zero
}
