// Package zalgo provides the Z algorithm: lazy Z-array production and
// linear-time exact pattern matching over sequences of any comparable
// alphabet.
//
// What & Why
//
//   - What is a Z-array?
//     For a sequence S of length n, the Z-array holds, at position i,
//     the length of the longest common prefix of S and its suffix
//     S[i:] — with the one conventional exception that position 0 is
//     defined as 0 rather than the trivial n.
//
//   - Why the Z algorithm matters:
//
//   - Exact matching: find all occurrences of a pattern P in a text T,
//     overlaps included, in Θ(|P|+|T|) total comparisons.
//
//   - Prefix structure: border and period analysis, prefix-suffix
//     overlaps, string compression — many contest string problems are
//     one Z-array away.
//
// How matching works
//
//	Construct S = P ++ [separator] ++ T, where the separator equals no
//	element of either sequence, and scan S's Z-array: every position
//	whose value is exactly |P| marks an occurrence of P in T.
//
//	For example, with T = "aaabbbabbaabb" and P = "aabb":
//
//	      S: a a b b $ a a a b b b a b b a a b b
//	Z-array: 0 1 0 0 0 2 4 1 0 0 0 1 0 0 4 1 0 0
//	                     ↑               ↑
//
//	two occurrences, at text indices 1 and 9.
//
//	Rather than demanding a reserved character from the caller's
//	alphabet, the engine wraps every compared element in a
//	present/absent pair and uses the absent value as the separator, so
//	matching works over arbitrary alphabets with no sentinel collisions.
//
// Lazy production
//
//	Both surfaces are pull iterators: LongestPrefixLengths yields the
//	Z-array values for positions 1..n-1 one Next call at a time, and
//	Find yields occurrence indices in increasing order. Iterators are
//	single-pass and non-restartable; exhausting one costs Θ(n) total
//	work thanks to the Z-box invariant (the right edge of the tracked
//	match box only ever increases).
//
// Error Conditions
//
//	None. Every finite input — empty pattern, empty text, both empty —
//	has a well-defined result.
//
// Complexity
//
//	LongestPrefixLengths  Θ(n) total to exhaust, O(n) memory
//	Find                  Θ(|P|+|T|) total to exhaust, O(|P|+|T|) memory
//
// See: Dan Gusfield, 1997, Algorithms on Strings, Trees and Sequences,
// p. 9. For usage see example_test.go in this package.
package zalgo
