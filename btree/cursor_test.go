package btree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildTree(t *testing.T, degree int, keys ...int) *Tree[int] {
	t.Helper()
	tree, err := New[int](Config{MinDegree: degree})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func TestCursorSeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "btree")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 2, 5, 3, 8, 1, 4, 7, 9)
	cursor, err := NewCursor(tree)
	if err != nil {
		t.Fatalf("new cursor failed: %v", err)
	}

	type tc struct {
		target int
		key    int
		ok     bool
	}
	cases := []tc{
		{target: 0, key: 1, ok: true},
		{target: 1, key: 1, ok: true},
		{target: 2, key: 3, ok: true},
		{target: 5, key: 5, ok: true},
		{target: 6, key: 7, ok: true},
		{target: 9, key: 9, ok: true},
		{target: 10, ok: false},
	}
	for _, c := range cases {
		key, ok := cursor.Seek(c.target)
		if ok != c.ok || (ok && key != c.key) {
			t.Fatalf("seek(%d): got (%d, %v), want (%d, %v)", c.target, key, ok, c.key, c.ok)
		}
	}
}

func TestCursorWalksAllKeys(t *testing.T) {
	tree := buildTree(t, 2, 5, 3, 8, 1, 4, 7, 9)
	cursor, _ := NewCursor(tree)
	var keys []int
	for key, ok := cursor.First(); ok; key, ok = cursor.Next() {
		keys = append(keys, key)
	}
	if !slices.Equal(keys, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Errorf("unexpected cursor walk %v", keys)
	}
	if _, ok := cursor.Next(); ok {
		t.Errorf("expected exhausted cursor to stay exhausted")
	}
}

func TestAscendMatchesSortedKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, deg := range []int{2, 3, 5} {
		tree, _ := New[int](Config{MinDegree: deg})
		var sorted []int
		for range 1500 {
			key := rng.Intn(3000)
			if tree.Insert(key) {
				sorted = append(sorted, key)
			}
		}
		slices.Sort(sorted)
		for _, from := range []int{-1, 0, 17, 1499, 2999, 3000} {
			i, _ := slices.BinarySearch(sorted, from)
			got := slices.Collect(tree.Ascend(from))
			if !slices.Equal(got, sorted[i:]) {
				t.Fatalf("t=%d: ascend(%d) yields %d keys, want %d", deg, from, len(got), len(sorted)-i)
			}
		}
	}
}

func TestCursorOnEmptyTree(t *testing.T) {
	tree, _ := New[string](Config{})
	cursor, _ := NewCursor(tree)
	if _, ok := cursor.First(); ok {
		t.Errorf("expected no first key in empty tree")
	}
	if _, ok := cursor.Seek("a"); ok {
		t.Errorf("expected seek to fail in empty tree")
	}
	if _, err := NewCursor[string](nil); !errors.Is(err, ErrNilTree) {
		t.Errorf("expected ErrNilTree for nil tree, got %v", err)
	}
	var none *Tree[string]
	if got := slices.Collect(none.Ascend("a")); len(got) != 0 {
		t.Errorf("expected nil tree to yield no keys, got %v", got)
	}
}
