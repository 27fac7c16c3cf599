package ordtrees

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/ordtrees/avl"
	"github.com/npillmayer/ordtrees/bst"
	"github.com/npillmayer/ordtrees/btree"
	"github.com/npillmayer/ordtrees/rbtree"
)

// Engine is an ordered set of distinct keys.
type Engine[K cmp.Ordered] interface {
	Insert(key K) bool   // false if key is already present
	Contains(key K) bool // membership test
	All() iter.Seq[K]    // keys in ascending order
	Len() int            // number of keys
	Height() int         // number of levels, 0 for an empty engine
	Check() error        // structural invariants
}

var (
	_ Engine[int] = (*bst.Tree[int])(nil)
	_ Engine[int] = (*avl.Tree[int])(nil)
	_ Engine[int] = (*rbtree.Tree[int])(nil)
	_ Engine[int] = (*btree.Tree[int])(nil)
)

// Kind selects a tree engine.
type Kind int

// Engine kinds
const (
	BST Kind = iota
	AVL
	RedBlack
	BTree
)

var kindNames = [...]string{"bst", "avl", "rb", "btree"}

func (k Kind) String() string {
	if k < BST || k > BTree {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists all engine kinds.
func Kinds() []Kind {
	return []Kind{BST, AVL, RedBlack, BTree}
}

// ParseKind maps an engine name to its kind. Names are case-insensitive;
// a red-black tree may be called "rb" or "redblack".
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bst":
		return BST, nil
	case "avl":
		return AVL, nil
	case "rb", "redblack", "red-black":
		return RedBlack, nil
	case "btree", "b-tree":
		return BTree, nil
	}
	return BST, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// ParseKinds parses a comma-separated list of engine names.
func ParseKinds(list string) ([]Kind, error) {
	var kinds []Kind
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: no engine in %q", ErrIllegalArguments, list)
	}
	return kinds, nil
}

// Config selects and parametrizes an engine.
type Config struct {
	Kind      Kind
	MinDegree int // B-tree minimum degree; 0 selects btree.DefaultMinDegree
}

// New creates an empty engine of kind cfg.Kind.
func New[K cmp.Ordered](cfg Config) (Engine[K], error) {
	switch cfg.Kind {
	case BST:
		return bst.New[K](), nil
	case AVL:
		return avl.New[K](), nil
	case RedBlack:
		return rbtree.New[K](), nil
	case BTree:
		tree, err := btree.New[K](btree.Config{MinDegree: cfg.MinDegree})
		if err != nil {
			return nil, err
		}
		return tree, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, cfg.Kind)
}

// Build creates an engine and inserts keys into it, in order. It returns the
// number of keys actually added, i.e. without duplicates.
func Build[K cmp.Ordered](cfg Config, keys ...K) (Engine[K], int, error) {
	engine, err := New[K](cfg)
	if err != nil {
		return nil, 0, err
	}
	added := 0
	for _, key := range keys {
		if engine.Insert(key) {
			added++
		}
	}
	T().Debugf("built %s engine with %d keys", cfg.Kind, added)
	return engine, added, nil
}
