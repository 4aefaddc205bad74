package dsu

import (
	"fmt"
	"sort"
	"strings"
)

// Sets returns the current partition as a slice of groups, one group
// per disjoint set. Neither the order of groups nor the order of keys
// inside a group is specified.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (f *Forest[K]) Sets() [][]K {
	byRoot := make(map[int][]K, f.count)
	for item, i := range f.index {
		root := f.find(i)
		byRoot[root] = append(byRoot[root], item)
	}

	sets := make([][]K, 0, len(byRoot))
	for _, group := range byRoot {
		sets = append(sets, group)
	}

	return sets
}

// String renders the partition as a human-readable grouping, e.g.
// "{{A B} {C}}". Intended for debugging; the exact formatting is not a
// contract. Groups are printed largest-first (size ties by rendering)
// so that the output is stable enough to eyeball across runs.
func (f *Forest[K]) String() string {
	sets := f.Sets()
	rendered := make([]string, len(sets))
	for i, group := range sets {
		parts := make([]string, len(group))
		for j, item := range group {
			parts[j] = fmt.Sprintf("%v", item)
		}
		sort.Strings(parts)
		rendered[i] = "{" + strings.Join(parts, " ") + "}"
	}
	sort.Slice(rendered, func(i, j int) bool {
		if len(rendered[i]) != len(rendered[j]) {
			return len(rendered[i]) > len(rendered[j])
		}

		return rendered[i] < rendered[j]
	})

	return "{" + strings.Join(rendered, " ") + "}"
}
