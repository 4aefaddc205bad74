// Package cpkit is a grab-bag of small, independent algorithmic
// utilities for competitive-programming contests — each package is a
// self-contained snippet meant to be copied into a single-file solution.
//
// 🚀 What is cpkit?
//
//	A modern, generics-based snippet library that currently ships:
//		• dsu/   — disjoint-set forest (union-find) over arbitrary
//		           comparable keys, union-by-size + path compression
//		• zalgo/ — Z-algorithm engine: lazy Z-array production and
//		           linear-time exact pattern matching over any alphabet
//
// ✨ Why choose cpkit?
//
//   - Contest-friendly – minimal API, no setup, copy-paste ready
//   - Textbook-exact – the classic algorithms, invariants documented in-code
//   - Pure Go – no cgo, no hidden deps
//   - Generic – keys and alphabets are type parameters, not interface{}
//
// The packages are leaves: neither depends on the other, and each is
// usable standalone.
//
// Quick ASCII example (union-find after Union(A,B), Union(C,D)):
//
//	    A───B      C───D      E
//
//	three disjoint sets over five keys.
//
// Next up: rolling hashes, segment trees and beyond. Dive into each
// package's doc.go for the full story, complexity tables and examples.
//
//	go get github.com/velvetlane/cpkit/dsu
package cpkit
