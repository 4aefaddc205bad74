package dsu

// node is a single arena entry. A node is a root iff parent < 0; roots
// carry the size of their set. Children carry the arena index of their
// parent. Following parent links always terminates at a root: Union only
// ever attaches one root beneath another, so the links are acyclic by
// construction.
type node struct {
	parent int // arena index of the parent, or -1 for a root
	size   int // number of keys in the set; meaningful on roots only
}

// Forest maintains a partition of comparable keys into disjoint sets.
//
// Keys are mapped to a private node arena; two keys belong to the same
// set iff their chains of parent links resolve to the same arena index.
// Nodes are never removed; the set count decreases only via successful
// Union calls and increases only via Add.
//
// Maintaining the set count incrementally costs one branch per
// operation, but frees callers from tallying the results of every Add
// and Union themselves.
//
// A Forest is not safe for concurrent use: even read-style queries
// compress paths in place (see find).
type Forest[K comparable] struct {
	index map[K]int // key → arena index; one entry per key ever added
	nodes []node    // node arena; grows by one per added key
	count int       // current number of disjoint sets
}

// New creates an empty forest.
func New[K comparable]() *Forest[K] {
	return &Forest[K]{index: make(map[K]int)}
}

// FromItems creates a forest of singleton sets, one per distinct item.
// Duplicated items are collapsed: only the first occurrence is added.
//
// Complexity: O(len(items)).
func FromItems[K comparable](items ...K) *Forest[K] {
	f := New[K]()
	for _, item := range items {
		f.Add(item)
	}

	return f
}

// Add inserts item as a new singleton set and returns true.
// If a set already contains item, the forest is unchanged and Add
// returns false.
//
// Complexity: O(1) amortized.
func (f *Forest[K]) Add(item K) bool {
	if _, ok := f.index[item]; ok {
		return false
	}
	// New key: append a fresh root of size 1 and count it as a set.
	f.index[item] = len(f.nodes)
	f.nodes = append(f.nodes, node{parent: -1, size: 1})
	f.count++

	return true
}

// Items reports how many keys have ever been added, regardless of how
// they are grouped.
func (f *Forest[K]) Items() int {
	return len(f.index)
}

// Count reports how many disjoint sets the forest currently holds.
// The value is maintained incrementally, never recomputed.
func (f *Forest[K]) Count() int {
	return f.count
}

// find resolves arena index i to the index of its root, applying full
// path compression: after the walk, every child visited on the way is
// re-parented directly onto the root. This mutates the representation
// of logically read-only queries; observable membership never changes.
//
// Iterative two-pass form, so that adversarially long chains cannot
// overflow the stack.
func (f *Forest[K]) find(i int) int {
	// 1. Walk up to the root.
	root := i
	for f.nodes[root].parent >= 0 {
		root = f.nodes[root].parent
	}
	// 2. Second pass: point every node on the walked path at the root.
	for f.nodes[i].parent >= 0 {
		next := f.nodes[i].parent
		f.nodes[i].parent = root
		i = next
	}

	return root
}

// lookup resolves the two keys of a two-key operation to their arena
// indices, or reports exactly which of them are missing (both, when both
// are absent).
func (f *Forest[K]) lookup(item1, item2 K) (int, int, error) {
	i1, ok1 := f.index[item1]
	i2, ok2 := f.index[item2]
	switch {
	case ok1 && ok2:
		return i1, i2, nil
	case ok1:
		return 0, 0, notFound(item2)
	case ok2:
		return 0, 0, notFound(item1)
	default:
		return 0, 0, notFound(item1, item2)
	}
}

// SetLen reports how many keys belong to the set containing item.
// Fails with *NotFoundError if no set contains item.
//
// Compresses paths as a side effect (see find).
//
// Complexity: O(α(n)) amortized.
func (f *Forest[K]) SetLen(item K) (int, error) {
	i, ok := f.index[item]
	if !ok {
		return 0, notFound(item)
	}

	return f.nodes[f.find(i)].size, nil
}

// SameSet reports whether item1 and item2 belong to the same set.
// Fails with *NotFoundError naming whichever of the two keys are
// missing; when both are missing, both are named.
//
// Compresses paths as a side effect (see find).
//
// Complexity: O(α(n)) amortized.
func (f *Forest[K]) SameSet(item1, item2 K) (bool, error) {
	i1, i2, err := f.lookup(item1, item2)
	if err != nil {
		return false, err
	}

	return f.find(i1) == f.find(i2), nil
}

// Union merges the set containing item1 with the set containing item2.
//
// Returns (false, nil) without mutation when both keys already share a
// set. Otherwise the smaller set's root becomes a child of the larger
// set's root (union by size), the surviving root's size becomes the sum
// of both, the set count drops by one, and Union returns (true, nil).
// On equal sizes item1's root is the one demoted; the tie direction is
// deterministic but not part of the contract.
//
// Fails with *NotFoundError under the same naming rule as SameSet.
//
// Complexity: O(α(n)) amortized.
func (f *Forest[K]) Union(item1, item2 K) (bool, error) {
	i1, i2, err := f.lookup(item1, item2)
	if err != nil {
		return false, err
	}

	// 1. Resolve both roots; nothing to do if they coincide.
	root1, root2 := f.find(i1), f.find(i2)
	if root1 == root2 {
		return false, nil
	}

	// 2. Attach the smaller tree under the larger root. Ties demote
	//    item1's root.
	winner, loser := root2, root1
	if f.nodes[root1].size > f.nodes[root2].size {
		winner, loser = root1, root2
	}
	f.nodes[winner].size += f.nodes[loser].size
	f.nodes[loser].parent = winner
	f.nodes[loser].size = 0

	// 3. Two sets became one.
	f.count--

	return true, nil
}
