package zalgo

// PrefixLengths lazily yields a sequence's Z-array values, one position
// per Next call. Produced by LongestPrefixLengths; single-pass and
// non-restartable. The iterator reads the sequence but never modifies
// it; all scratch state (box and table) is private to the instance, so
// independent iterators never interact.
type PrefixLengths[T comparable] struct {
	text  []T
	box   span
	table []int
}

// LongestPrefixLengths returns an iterator over the Z-array of text:
// for each position i from 1 to len(text)-1, the length of the longest
// common prefix of text and text[i:]. Position 0 (whose value is fixed
// at 0 by convention) is not yielded, so sequences of length 0 or 1
// yield nothing.
//
// Exhausting the iterator takes Θ(len(text)) total element comparisons.
func LongestPrefixLengths[T comparable](text []T) *PrefixLengths[T] {
	// Seed position 0 with its conventional zero entry; the table's
	// length is the cursor for every later step.
	table := make([]int, 1, len(text)+1)

	return &PrefixLengths[T]{text: text, table: table}
}

// Next computes and returns the Z-value of the next position. The
// second result is false once every position has been yielded.
func (p *PrefixLengths[T]) Next() (int, bool) {
	if !advance(p.text, &p.box, &p.table) {
		return 0, false
	}

	return p.table[len(p.table)-1], true
}

// Collect drains the iterator into a slice of the remaining values.
// Called on a fresh iterator it returns the full public Z-array.
func (p *PrefixLengths[T]) Collect() []int {
	values := make([]int, 0, cap(p.table)-len(p.table))
	for v, ok := p.Next(); ok; v, ok = p.Next() {
		values = append(values, v)
	}

	return values
}
