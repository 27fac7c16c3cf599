package bst

import (
	"math/rand"
	"slices"
	"testing"
)

func TestInsertSearchTraverse(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 3} {
		tree.Insert(k)
	}
	if tree.Len() != 7 {
		t.Errorf("expected 7 distinct keys, have %d", tree.Len())
	}
	if got := slices.Collect(tree.All()); !slices.Equal(got, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Errorf("unexpected traversal %v", got)
	}
	root, _ := tree.Root()
	if root.Key() != 5 {
		t.Errorf("insertion order must determine root, got %d", root.Key())
	}
	if n, ok := tree.Search(4); !ok || n.Key() != 4 {
		t.Errorf("search(4) failed")
	}
	if tree.Contains(6) {
		t.Errorf("6 was never inserted")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestAscendingInsertionDegenerates(t *testing.T) {
	tree := New[int]()
	for k := 1; k <= 500; k++ {
		tree.Insert(k)
	}
	if tree.Height() != 500 {
		t.Errorf("expected degenerate height 500, got %d", tree.Height())
	}
	if !tree.Contains(500) || tree.Contains(501) {
		t.Errorf("search on degenerate tree failed")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestRandomInsertions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tree := New[int]()
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		k := rng.Intn(3000)
		if tree.Insert(k) == seen[k] {
			t.Fatalf("insert(%d) result does not match prior presence", k)
		}
		seen[k] = true
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 3000; k++ {
		if tree.Contains(k) != seen[k] {
			t.Fatalf("contains(%d) mismatch", k)
		}
	}
}
