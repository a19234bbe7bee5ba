package wordindex

import (
	"fmt"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// WORD: A Key and Its Occurrence Count
// ═══════════════════════════════════════════════════════════════════════════════
// Every index stores Words. A Word is created the first time a key is added
// and its count is bumped each time the same key is added again:
//
//	Add("fox") → Word{key: "fox", count: 1}
//	Add("fox") → Word{key: "fox", count: 2}
//
// IDENTITY VS EQUALITY:
// ---------------------
// - Ordering (Compare) is case-sensitive: "Fox" < "fox"
// - Equality (Equals) ignores case but requires matching counts
//
// The two rules disagree on purpose: "Fox"(1) and "fox"(1) are Equal but sort
// into different positions. Indexes are keyed by the case-sensitive form.
// ═══════════════════════════════════════════════════════════════════════════════
type Word struct {
	key   string // Immutable after construction
	count int    // Number of times key was added (always >= 1)
}

// NewWord creates a Word with a count of 1
//
// Returns ErrInvalidKey for the empty string.
func NewWord(key string) (*Word, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	return &Word{key: key, count: 1}, nil
}

// Key returns the stored key
func (w *Word) Key() string {
	return w.key
}

// Count returns how many times the key has been added
func (w *Word) Count() int {
	return w.count
}

// Increment bumps the count by one and returns the new value
func (w *Word) Increment() int {
	w.count++
	return w.count
}

// Compare orders words by key, byte-wise and case-sensitive
//
// Returns -1, 0 or +1 like strings.Compare.
func (w *Word) Compare(other *Word) int {
	return strings.Compare(w.key, other.key)
}

// Equals reports whether two words have the same key (ignoring case) and the
// same count. A nil Word only equals another nil Word.
func (w *Word) Equals(other *Word) bool {
	if w == nil || other == nil {
		return w == other
	}
	if w == other {
		return true
	}
	return strings.EqualFold(w.key, other.key) && w.count == other.count
}

// String renders the word as "<count>  <key>"
//
// Example:
//
//	Word{key: "fox", count: 3}.String() → "3  fox"
func (w *Word) String() string {
	return fmt.Sprintf("%d  %s", w.count, w.key)
}
