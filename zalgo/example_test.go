package zalgo_test

import (
	"fmt"

	"github.com/velvetlane/cpkit/zalgo"
)

// ExampleFind locates every occurrence of a pattern in a text, pulling
// the indices lazily — overlapping occurrences included.
func ExampleFind() {
	text := []rune("xababxabababxabxabab")
	pattern := []rune("abab")

	it := zalgo.Find(text, pattern)
	for i, ok := it.Next(); ok; i, ok = it.Next() {
		fmt.Println(i)
	}
	// Output:
	// 1
	// 6
	// 8
	// 16
}

// ExampleLongestPrefixLengths prints the Z-array of a sequence: the
// longest common prefix length between the sequence and each suffix.
func ExampleLongestPrefixLengths() {
	fmt.Println(zalgo.LongestPrefixLengths([]rune("aabcabaabcac")).Collect())
	// Output: [1 0 0 1 0 5 1 0 0 1 0]
}

// ExampleLongestPrefixLengths_overlap computes the longest suffix of s
// that is also a prefix of t, a common contest subproblem (e.g.
// Codeforces 1200E, Compress Words): run the Z-array over t ++ s and
// look for the suffix position whose match runs to the very end.
func ExampleLongestPrefixLengths_overlap() {
	s, t := "samplease", "ease"

	concat := []rune(t + s)
	overlap := 0
	pos := 1
	it := zalgo.LongestPrefixLengths(concat)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if pos >= len(t) && pos+v == len(concat) && v <= len(t) {
			overlap = v
			break
		}
		pos++
	}

	fmt.Println(overlap)
	// Output: 4
}
