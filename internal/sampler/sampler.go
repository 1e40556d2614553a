// Package sampler draws random subsets without replacement.
package sampler

import "math/rand/v2"

// DefaultCount is the number of games drawn by a random pick.
const DefaultCount = 3

// Sample returns up to k distinct elements of list in random order.
// The input slice is never modified. A nil r uses the global source.
func Sample[T any](r *rand.Rand, list []T, k int) []T {
	if k <= 0 || len(list) == 0 {
		return []T{}
	}

	pool := make([]T, len(list))
	copy(pool, list)

	n := min(k, len(pool))
	out := make([]T, 0, n)
	for len(out) < n {
		var i int
		if r != nil {
			i = r.IntN(len(pool))
		} else {
			i = rand.IntN(len(pool))
		}
		out = append(out, pool[i])
		// swap-remove keeps the draw O(1)
		last := len(pool) - 1
		pool[i] = pool[last]
		pool = pool[:last]
	}
	return out
}
