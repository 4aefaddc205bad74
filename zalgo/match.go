package zalgo

// element wraps one alphabet value so that the zero element (absent)
// can serve as a separator guaranteed to equal nothing in the caller's
// sequences. Structs of comparable fields compare field-wise, so an
// absent element differs from every present one regardless of value.
type element[T comparable] struct {
	value   T
	present bool
}

// Matches lazily yields the indices at which a pattern occurs in a
// text, in increasing order, overlapping occurrences included.
// Produced by Find; single-pass and non-restartable.
type Matches[T comparable] struct {
	concat     []element[T]
	patternLen int
	box        span
	table      []int
}

// Find returns an iterator over every index i of text such that
// text[i:i+len(pattern)] equals pattern. It runs the Z algorithm over
// the logical concatenation pattern ++ [separator] ++ text; the
// positions covering the pattern and separator are computed during
// construction and never yielded.
//
// An empty pattern matches at every index 0..len(text); an empty text
// matches nothing.
//
// Exhausting the iterator takes Θ(len(pattern)+len(text)) total element
// comparisons.
func Find[T comparable](text, pattern []T) *Matches[T] {
	concat := make([]element[T], 0, len(pattern)+1+len(text))
	for _, v := range pattern {
		concat = append(concat, element[T]{value: v, present: true})
	}
	concat = append(concat, element[T]{}) // the separator
	for _, v := range text {
		concat = append(concat, element[T]{value: v, present: true})
	}

	m := &Matches[T]{
		concat:     concat,
		patternLen: len(pattern),
		table:      make([]int, 1, len(concat)+1),
	}
	// Warm up over the pattern region so the first Next call lands on
	// the text.
	for i := 0; i < len(pattern); i++ {
		advance(m.concat, &m.box, &m.table)
	}

	return m
}

// Next returns the index into the original text of the next occurrence.
// The second result is false once the text is exhausted.
func (m *Matches[T]) Next() (int, bool) {
	for advance(m.concat, &m.box, &m.table) {
		if m.table[len(m.table)-1] == m.patternLen {
			// Translate the concatenation position back to a text
			// index: drop the pattern and the separator.
			return len(m.table) - 1 - (m.patternLen + 1), true
		}
	}

	return 0, false
}

// Collect drains the iterator into a slice of the remaining indices.
// Called on a fresh iterator it returns every occurrence.
func (m *Matches[T]) Collect() []int {
	var indices []int
	for i, ok := m.Next(); ok; i, ok = m.Next() {
		indices = append(indices, i)
	}

	return indices
}
