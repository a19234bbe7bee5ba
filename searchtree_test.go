package wordindex

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// checkBST verifies the ordering invariant and that size matches the node count
func checkBST(t *testing.T, tree *SearchTree) {
	t.Helper()

	var walk func(node *treeNode, lo, hi string) int
	walk = func(node *treeNode, lo, hi string) int {
		if node == nil {
			return 0
		}
		key := node.word.key
		if (lo != "" && key <= lo) || (hi != "" && key >= hi) {
			t.Fatalf("node %q outside bounds (%q, %q)", key, lo, hi)
		}
		return 1 + walk(node.left, lo, key) + walk(node.right, key, hi)
	}

	if n := walk(tree.root, "", ""); n != tree.size {
		t.Errorf("node count = %d, size = %d", n, tree.size)
	}
}

func height(node *treeNode) int {
	if node == nil {
		return 0
	}
	return 1 + max(height(node.left), height(node.right))
}

// ═══════════════════════════════════════════════════════════════════════════════
// ADD TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestNewSearchTree(t *testing.T) {
	tree := NewSearchTree()
	if tree.root != nil {
		t.Error("NewSearchTree() has a root")
	}
	if tree.Size() != 0 {
		t.Errorf("Size() = %d, want 0", tree.Size())
	}
}

func TestSearchTree_Add_Shape(t *testing.T) {
	tree := NewSearchTree()
	populate(t, tree, "m", "b", "t", "a", "d", "s", "z")
	checkBST(t, tree)

	if tree.root.word.key != "m" {
		t.Errorf("root = %q, want m", tree.root.word.key)
	}
	if tree.root.left.word.key != "b" || tree.root.right.word.key != "t" {
		t.Errorf("children = %q, %q, want b, t",
			tree.root.left.word.key, tree.root.right.word.key)
	}
	if h := height(tree.root); h != 3 {
		t.Errorf("height = %d, want 3", h)
	}
}

// Sorted input degenerates into a chain; the tree is never rebalanced.
func TestSearchTree_Add_SortedInputDegenerates(t *testing.T) {
	tree := NewSearchTree()
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	populate(t, tree, keys...)
	checkBST(t, tree)

	if h := height(tree.root); h != len(keys) {
		t.Errorf("height = %d, want %d", h, len(keys))
	}
	for node := tree.root; node != nil; node = node.right {
		if node.left != nil {
			t.Fatalf("node %q has a left child in an ascending chain", node.word.key)
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// REMOVE TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestSearchTree_Remove_TwoChildRoot(t *testing.T) {
	tree := NewSearchTree()
	populate(t, tree, "m", "b", "t", "a", "d", "s", "z")

	tree.Remove("m")
	checkBST(t, tree)

	if got, want := keysOf(tree), []string{"a", "b", "d", "s", "t", "z"}; !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
	if tree.Size() != 6 {
		t.Errorf("Size() = %d, want 6", tree.Size())
	}
	if tree.root.word.key != "s" {
		t.Errorf("root = %q, want in-order successor s", tree.root.word.key)
	}
	if got, _ := tree.Get("m"); got != NotFound {
		t.Errorf("Get(\"m\") = %d, want NotFound", got)
	}
}

func TestSearchTree_Remove_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		remove string
	}{
		{"Leaf", []string{"m", "b", "t"}, "b"},
		{"Only left child", []string{"m", "b", "a"}, "b"},
		{"Only right child", []string{"m", "b", "d"}, "b"},
		{"Two children, successor has right child", []string{"m", "b", "t", "r", "z", "s"}, "m"},
		{"Root with one child", []string{"m", "t"}, "m"},
		{"Root leaf", []string{"m"}, "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewSearchTree()
			populate(t, tree, tt.keys...)
			want := slices.DeleteFunc(keysOf(tree), func(k string) bool { return k == tt.remove })

			tree.Remove(tt.remove)
			checkBST(t, tree)

			if got := keysOf(tree); !slices.Equal(got, want) {
				t.Errorf("keys = %v, want %v", got, want)
			}
			if tree.Size() != len(tt.keys)-1 {
				t.Errorf("Size() = %d, want %d", tree.Size(), len(tt.keys)-1)
			}
		})
	}
}

// Counts travel with their word when a successor moves up.
func TestSearchTree_Remove_KeepsSuccessorCount(t *testing.T) {
	tree := NewSearchTree()
	populate(t, tree, "m", "b", "t", "s", "s", "s")

	tree.Remove("m")

	if got, _ := tree.Get("s"); got != 3 {
		t.Errorf("Get(\"s\") = %d, want 3", got)
	}
	checkBST(t, tree)
}

func TestSearchTree_Remove_RandomKeepsInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))

	for round := 0; round < 30; round++ {
		tree := NewSearchTree()
		populate(t, tree, randomKeys(rng, 40)...)

		keys := keysOf(tree)
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for _, key := range keys[:len(keys)/2] {
			tree.Remove(key)
			checkBST(t, tree)
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// SNAPSHOT ITERATOR TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func TestSearchTree_Iterator_IgnoresLaterAdds(t *testing.T) {
	tree := NewSearchTree()
	populate(t, tree, "b", "d")

	it := tree.Iterator()
	it.Next() // b

	populate(t, tree, "c", "e", "a")

	var rest []string
	for it.HasNext() {
		w, _ := it.Next()
		rest = append(rest, w.Key())
	}

	if want := []string{"d"}; !slices.Equal(rest, want) {
		t.Errorf("remaining traversal = %v, want %v", rest, want)
	}
	if tree.Size() != 5 {
		t.Errorf("Size() = %d, want 5", tree.Size())
	}
}

func TestSearchTree_Iterator_IgnoresLaterRemoves(t *testing.T) {
	tree := NewSearchTree()
	populate(t, tree, "a", "b", "c")

	it := tree.Iterator()
	tree.Remove("b")

	var all []string
	for it.HasNext() {
		w, _ := it.Next()
		all = append(all, w.Key())
	}

	if want := []string{"a", "b", "c"}; !slices.Equal(all, want) {
		t.Errorf("snapshot traversal = %v, want %v", all, want)
	}
}

// Removing a word the tree has already lost only evicts it from the buffer.
func TestSearchTree_Iterator_RemoveStaleWord(t *testing.T) {
	tree := NewSearchTree()
	populate(t, tree, "a", "b", "c")

	it := tree.Iterator()
	tree.Remove("a")

	it.Next() // a, no longer in the tree
	it.Remove()

	if tree.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tree.Size())
	}
	if w, _ := it.Next(); w == nil || w.Key() != "b" {
		t.Errorf("Next() = %v, want b", w)
	}
	checkBST(t, tree)
}

func TestSearchTree_Iterator_RemoveTwoChildNode(t *testing.T) {
	tree := NewSearchTree()
	populate(t, tree, "m", "b", "t", "a", "d", "s", "z")

	it := tree.Iterator()
	var seen []string
	for it.HasNext() {
		w, _ := it.Next()
		seen = append(seen, w.Key())
		if w.Key() == "m" {
			it.Remove()
		}
	}

	if want := []string{"a", "b", "d", "m", "s", "t", "z"}; !slices.Equal(seen, want) {
		t.Errorf("traversal = %v, want %v", seen, want)
	}
	if got, want := keysOf(tree), []string{"a", "b", "d", "s", "t", "z"}; !slices.Equal(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
	checkBST(t, tree)
}
