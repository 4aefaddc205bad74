package zalgo

// span is a half-open index range [start, end) over a sequence.
type span struct {
	start, end int
}

// matchLen returns the length of the longest common prefix of a and b.
//
// Complexity: O(min(len(a), len(b))).
func matchLen[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

// advance computes the Z-value for the next position of text, appending
// it to table and maintaining box, the rightmost-ending match region
// discovered so far. Returns false once every position has been
// computed.
//
// Invariant: box is a range [l, r) with text[l:r] == text[:r-l], and r
// only ever increases — which is what bounds the total element
// comparisons of a full run at Θ(len(text)).
//
// The next position is len(*table): the table doubles as the cursor.
// Callers seed it with the conventional zero entry for position 0.
func advance[T comparable](text []T, box *span, table *[]int) bool {
	index := len(*table)
	if index >= len(text) {
		return false
	}

	if index >= box.end {
		// Outside the known box: match the suffix against the whole
		// sequence from scratch and open a fresh box.
		length := matchLen(text, text[index:])
		*box = span{start: index, end: index + length}
		*table = append(*table, length)

		return true
	}

	// Inside the box: the prefix position mirroring index has already
	// been computed and can be reused.
	remaining := box.end - index
	mirror := index - box.start
	mirrorLen := (*table)[mirror]
	if mirrorLen < remaining {
		// The mirrored match ends strictly inside the box; its value
		// transfers unchanged.
		*table = append(*table, mirrorLen)

		return true
	}

	// The match may extend past the box; compare only the unexplored
	// tail and grow the box to the new right edge.
	extra := matchLen(text[remaining:], text[box.end:])
	*box = span{start: index, end: box.end + extra}
	*table = append(*table, remaining+extra)

	return true
}
