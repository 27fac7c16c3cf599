package bst

import (
	"math/rand"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	tree := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(rng.Intn(b.N + 1))
	}
}

// ascending keys degenerate the tree into a list
func BenchmarkInsertAscending(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for k := range 1000 {
			tree.Insert(k)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	tree := New[int]()
	for i := 0; i < 100000; i++ {
		tree.Insert(rng.Intn(1000000))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(rng.Intn(1000000))
	}
}
