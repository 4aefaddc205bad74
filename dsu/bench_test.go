package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/velvetlane/cpkit/dsu"
)

// benchPairs pre-generates a deterministic random union workload so the
// timed loop measures only forest operations.
func benchPairs(n, ops int) [][2]int {
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, ops)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	return pairs
}

// BenchmarkUnion measures a mixed Union workload over 10k keys.
func BenchmarkUnion(b *testing.B) {
	const n = 10_000
	pairs := benchPairs(n, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sets := dsu.New[int]()
		for k := 0; k < n; k++ {
			sets.Add(k)
		}
		for _, p := range pairs {
			_, _ = sets.Union(p[0], p[1])
		}
	}
}

// BenchmarkSameSet measures compressed queries on a fully merged forest.
func BenchmarkSameSet(b *testing.B) {
	const n = 10_000
	sets := dsu.New[int]()
	for k := 0; k < n; k++ {
		sets.Add(k)
	}
	for k := 1; k < n; k++ {
		_, _ = sets.Union(k-1, k)
	}
	pairs := benchPairs(n, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range pairs {
			_, _ = sets.SameSet(p[0], p[1])
		}
	}
}
