// Package dsu provides a disjoint-set forest (union-find) keyed by
// arbitrary comparable values, with union-by-size and full path
// compression.
//
// What & Why
//
//   - What is a disjoint-set forest?
//     Given a universe of keys added one at a time, the forest maintains
//     a partition of those keys into disjoint sets, supporting
//     Union (merge two sets) and SameSet (membership query) in amortized
//     near-constant time — O(α(n)) per operation, where α is the inverse
//     Ackermann function.
//
//   - Why union-find matters:
//
//   - Connectivity: incremental "are these connected?" queries over
//     growing graphs (Kruskal's MST, network reachability).
//
//   - Grouping: merging equivalence classes (accounts, islands on a
//     grid, friend circles) as relations arrive one by one.
//
//   - Contest staple: a large family of problems reduces to "maintain
//     components under merges" (e.g. AtCoder ABC120 D, ABC126 E).
//
// Hashable keys, not dense indices
//
//	Most snippets fix the universe to 0..n-1 up front. Forest instead
//	maps any comparable key K to an internal arena index, so strings,
//	pairs, coordinates — anything usable as a Go map key — join sets
//	directly, and keys may be added at any time.
//
// Core operations
//
//   - Add(item) bool           — insert a singleton set; false if present.
//   - Union(a, b) (bool, error) — merge the two containing sets.
//   - SameSet(a, b) (bool, error) — one-root test.
//   - SetLen(item) (int, error)   — size of the containing set.
//   - Count() int              — number of disjoint sets (maintained).
//   - Items() int              — total keys ever added.
//
// A note on mutation during queries
//
//	SetLen and SameSet perform path compression as a side effect: they
//	rewrite internal parent links so later queries are faster. Observable
//	set membership never changes, but the Forest must be treated as
//	mutable even during reads — share it across goroutines only behind
//	an external lock.
//
// Error Conditions
//
//	Every operation naming a key that was never added fails with a
//	*NotFoundError that reports exactly the missing key(s) and matches
//	errors.Is(err, ErrItemNotFound). There are no other failure modes.
//
// Complexity
//
//	Add            O(1) amortized
//	Union/SameSet/SetLen  O(α(n)) amortized
//	Sets/String    O(n·α(n))
//
// For usage see example_test.go in this package.
package dsu
