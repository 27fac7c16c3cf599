package avl

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
