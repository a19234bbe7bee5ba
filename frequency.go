package wordindex

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// CLIENT PROTOCOL: Populate, Prune, Compare
// ═══════════════════════════════════════════════════════════════════════════════
// These helpers only use the Index interface, so they work the same on every
// variant:
//
//	tokens := Analyze(text)
//	Populate(list, tokens)        // one Add per token
//	Populate(tree, tokens)
//	Prune(list, 2)                // drop words seen fewer than 2 times
//	Prune(tree, 2)
//	Equal(list, tree)             // must hold for any token order
// ═══════════════════════════════════════════════════════════════════════════════

// Populate adds every token to idx in order
//
// It stops at the first rejected token and reports its position; tokens
// before it stay in the index.
func Populate(idx Index, tokens []string) error {
	for i, token := range tokens {
		if err := idx.Add(token); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	return nil
}

// PruneReport describes a single Prune pass
type PruneReport struct {
	Scanned int             // Words visited by the iterator
	Removed *roaring.Bitmap // Sorted positions (0-based, before pruning) of removed words
}

// Kept returns how many of the scanned words survived
//
// A report with no Removed bitmap counts every scanned word as kept.
func (r PruneReport) Kept() int {
	if r.Removed == nil {
		return r.Scanned
	}
	return r.Scanned - int(r.Removed.GetCardinality())
}

// ═══════════════════════════════════════════════════════════════════════════════
// PRUNE: Mutation During Iteration
// ═══════════════════════════════════════════════════════════════════════════════
// Pruning is the one sanctioned way to change an index while iterating it:
// walk the iterator once and call it.Remove() on every word whose count is
// below minCount.
//
// EXAMPLE (minCount = 2):
// -----------------------
// Before: [2  a, 3  b, 1  c]
// After:  [2  a, 3  b]
// Report: Scanned=3, Removed={2}
//
// Removed records positions in the pre-prune sorted order, so two variants
// pruned from equal contents produce equal bitmaps.
// ═══════════════════════════════════════════════════════════════════════════════

// Prune removes every word whose count is smaller than minCount
func Prune(idx Index, minCount int) PruneReport {
	report := PruneReport{Removed: roaring.New()}

	it := idx.Iterator()
	for it.HasNext() {
		w, _ := it.Next()
		if w.Count() < minCount {
			it.Remove()
			report.Removed.Add(uint32(report.Scanned))
		}
		report.Scanned++
	}

	return report
}

// SideBySide renders a and b as two columns, one word per row
//
// The shorter side is padded with blanks:
//
//	"2  a                3  a                "
//	"1  b                                    "
func SideBySide(a, b Index) []string {
	var rows []string

	left, right := a.Iterator(), b.Iterator()
	for left.HasNext() || right.HasNext() {
		rows = append(rows, fmt.Sprintf("%-20s%-20s", cell(left), cell(right)))
	}

	return rows
}

// cell returns the next word's string form, or "" when it is exhausted
func cell(it Iterator) string {
	w, ok := it.Next()
	if !ok {
		return ""
	}
	return w.String()
}
