// Package wordindex implements ordered word-frequency indexes
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS A WORD INDEX?
// ═══════════════════════════════════════════════════════════════════════════════
// A word index counts how often each distinct word occurs and keeps the words
// in sorted order, like the concordance at the back of a book.
//
// Example: Given the token stream
//   "b" "a" "a" "c" "b" "b"
//
// The index would look like:
//   "a" → 2
//   "b" → 3
//   "c" → 1
//
// Two interchangeable implementations are provided:
//   - SortedList: a doubly-linked list kept in ascending order (live iterator)
//   - SearchTree: an unbalanced binary search tree (snapshot iterator)
//
// Both satisfy the Index interface, so callers that populate, prune or print
// an index never need to know which variant they hold.
// ═══════════════════════════════════════════════════════════════════════════════
package wordindex

import (
	"errors"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// ERROR DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════
var (
	ErrInvalidKey = errors.New("invalid key: key must be a non-empty string")
)

// NotFound is returned by Get when the key is not stored in the index
const NotFound = -1

// ═══════════════════════════════════════════════════════════════════════════════
// THE INDEX CONTRACT
// ═══════════════════════════════════════════════════════════════════════════════
// Every variant provides exactly this operation set:
//
//	Add(key)      insert with count 1, or increment an existing key
//	Remove(key)   delete the whole entry (not a count decrement)
//	Get(key)      count for key, or NotFound
//	Size()        number of distinct keys (NOT the sum of counts)
//	Iterator()    ascending traversal with mid-traversal Remove
//	Equals(other) structural equality against any other variant
//	String()      "[<count>  <key>, ...]"
//
// ERROR MODEL:
// ------------
//   - Add("") and Get("") fail with ErrInvalidKey and change nothing
//   - Get of a missing key returns NotFound, not an error
//   - Remove of a missing key, or on an empty index, is a silent no-op
//   - Iterator.Remove before Next, or twice in a row, is a silent no-op
//
// None of the variants are safe for concurrent use.
// ═══════════════════════════════════════════════════════════════════════════════
type Index interface {
	Add(key string) error
	Remove(key string)
	Get(key string) (int, error)
	Size() int
	Iterator() Iterator
	Equals(other Index) bool
	String() string
}

// Iterator walks an index in ascending key order
//
// USAGE PATTERN:
// --------------
//
//	it := idx.Iterator()
//	for it.HasNext() {
//	    w, _ := it.Next()
//	    if w.Count() < minCount {
//	        it.Remove()
//	    }
//	}
//
// Next returns (nil, false) once the traversal is exhausted. Remove deletes the
// word most recently returned by Next from the backing index.
type Iterator interface {
	HasNext() bool
	Next() (*Word, bool)
	Remove()
}

// ═══════════════════════════════════════════════════════════════════════════════
// STRUCTURAL EQUALITY
// ═══════════════════════════════════════════════════════════════════════════════
// Two indexes are equal when they hold the same words with the same counts in
// the same order, regardless of which variant stores them.
//
// ALGORITHM:
// ----------
//  1. Sizes differ → not equal (cheap early exit)
//  2. Walk both iterators in lock step, comparing each pair with Word.Equals
//  3. Either side has leftovers → not equal
//
// Only Next is ever called on the iterators, so neither index is mutated.
// ═══════════════════════════════════════════════════════════════════════════════

// Equal reports whether a and b hold pairwise-equal words in the same order
func Equal(a, b Index) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Size() != b.Size() {
		return false
	}

	left, right := a.Iterator(), b.Iterator()
	for left.HasNext() && right.HasNext() {
		lw, _ := left.Next()
		rw, _ := right.Next()
		if !lw.Equals(rw) {
			return false
		}
	}

	return !left.HasNext() && !right.HasNext()
}

// render builds the bracketed string form shared by every variant
//
// Example:
//
//	words [2 a] [3 b] [1 c] → "[2  a, 3  b, 1  c]"
func render(it Iterator) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for first := true; it.HasNext(); first = false {
		w, _ := it.Next()
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(w.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
