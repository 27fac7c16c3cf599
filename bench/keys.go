package bench

import (
	"fmt"
	"math/rand"
)

// Keys returns n keys drawn uniformly from [1, maxKey]. Equal seeds produce
// equal key sets. Keys may repeat.
func Keys(seed int64, n, maxKey int) ([]int, error) {
	if err := (Config{Count: n, MaxKey: maxKey}).validate(); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return draw(rand.New(rand.NewSource(seed)), n, maxKey), nil
}

func draw(rng *rand.Rand, n, maxKey int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(maxKey) + 1
	}
	return keys
}
