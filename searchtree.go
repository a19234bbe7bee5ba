package wordindex

import (
	"slices"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS A BINARY SEARCH TREE?
// ═══════════════════════════════════════════════════════════════════════════════
// Each node holds one word. Everything in its left subtree sorts before it and
// everything in its right subtree sorts after it.
//
// VISUAL REPRESENTATION (built from m b t a d s z):
// --------------------------------------------------
//
//	        [m]
//	       /   \
//	    [b]     [t]
//	   /   \   /   \
//	 [a]  [d] [s]  [z]
//
// In-order traversal (left, node, right) yields a b d m s t z.
//
// NO BALANCING:
// -------------
// The tree is never rotated. Adding keys in sorted order produces a chain
// where every node only has a right child, and all operations fall to O(n).
// Random insertion order gives O(log n) on average.
// ═══════════════════════════════════════════════════════════════════════════════

type treeNode struct {
	word  *Word
	left  *treeNode
	right *treeNode
}

// SearchTree is an Index backed by an unbalanced binary search tree
type SearchTree struct {
	root *treeNode
	size int
}

// NewSearchTree creates an empty tree
func NewSearchTree() *SearchTree {
	return &SearchTree{}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ADD: Recursive Descent
// ═══════════════════════════════════════════════════════════════════════════════
// Each call returns the (possibly new) root of the subtree it was given, so the
// parent can simply reassign its child pointer:
//
//	node.left = t.add(key, node.left)
//
// The first nil slot reached becomes a new leaf.
// ═══════════════════════════════════════════════════════════════════════════════

// Add inserts key as a new leaf, or increments its count if present
func (t *SearchTree) Add(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	t.root = t.add(key, t.root)
	return nil
}

func (t *SearchTree) add(key string, node *treeNode) *treeNode {
	if node == nil {
		t.size++
		return &treeNode{word: &Word{key: key, count: 1}}
	}

	switch c := strings.Compare(key, node.word.key); {
	case c < 0:
		node.left = t.add(key, node.left)
	case c > 0:
		node.right = t.add(key, node.right)
	default:
		node.word.Increment()
	}
	return node
}

// Get returns the count stored for key, or NotFound
func (t *SearchTree) Get(key string) (int, error) {
	if key == "" {
		return NotFound, ErrInvalidKey
	}
	return countOf(key, t.root), nil
}

func countOf(key string, node *treeNode) int {
	if node == nil {
		return NotFound
	}
	switch c := strings.Compare(key, node.word.key); {
	case c < 0:
		return countOf(key, node.left)
	case c > 0:
		return countOf(key, node.right)
	default:
		return node.word.count
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// REMOVE: Classic BST Deletion
// ═══════════════════════════════════════════════════════════════════════════════
// Once the node is found there are three shapes:
//
//  1. Leaf:         return nil to the parent
//  2. One child:    return that child to the parent (splice out)
//  3. Two children: copy the in-order successor (smallest key in the right
//                   subtree) into this node, then remove the successor from
//                   the right subtree. The successor has no left child, so
//                   that second removal is always case 1 or 2.
//
// EXAMPLE (removing m):
// ---------------------
//
//	        [m]                     [s]
//	       /   \                   /   \
//	    [b]     [t]     →       [b]     [t]
//	   /   \   /   \           /   \       \
//	 [a]  [d] [s]  [z]       [a]  [d]      [z]
//
// size is decremented only where a node actually leaves the tree (cases 1
// and 2), so each Remove decrements it at most once.
// ═══════════════════════════════════════════════════════════════════════════════

// Remove deletes key from the tree
//
// Removing an empty key, a missing key, or from an empty tree is a no-op.
func (t *SearchTree) Remove(key string) {
	if key == "" || t.root == nil {
		return
	}
	t.root = t.remove(key, t.root)
}

func (t *SearchTree) remove(key string, node *treeNode) *treeNode {
	if node == nil {
		return nil
	}

	switch c := strings.Compare(key, node.word.key); {
	case c < 0:
		node.left = t.remove(key, node.left)
	case c > 0:
		node.right = t.remove(key, node.right)
	default:
		if node.left != nil && node.right != nil {
			successor := minNode(node.right)
			node.word = successor.word
			node.right = t.remove(successor.word.key, node.right)
			return node
		}

		t.size--
		if node.left != nil {
			return node.left
		}
		return node.right
	}
	return node
}

// minNode follows left children down to the smallest key
func minNode(node *treeNode) *treeNode {
	for node.left != nil {
		node = node.left
	}
	return node
}

// Size returns the number of distinct keys in the tree
func (t *SearchTree) Size() int {
	return t.size
}

// Equals reports structural equality with any other Index
func (t *SearchTree) Equals(other Index) bool {
	return Equal(t, other)
}

// String renders the tree as "[<count>  <key>, ...]"
func (t *SearchTree) String() string {
	return render(t.Iterator())
}

// inorder appends every word under node to words in ascending order
func inorder(node *treeNode, words []*Word) []*Word {
	if node == nil {
		return words
	}
	words = inorder(node.left, words)
	words = append(words, node.word)
	return inorder(node.right, words)
}

// ═══════════════════════════════════════════════════════════════════════════════
// ITERATOR: A Snapshot of the Tree
// ═══════════════════════════════════════════════════════════════════════════════
// The iterator runs a full in-order traversal when it is created and then only
// walks that buffer. Adding or removing keys directly on the tree afterwards
// does not change which words the iterator yields or their order.
//
// The buffer holds the tree's own *Word values, so a count bumped by a later
// Add is visible through a word already in the buffer.
//
// REMOVE:
// -------
// Remove deletes the last returned key from the tree (through
// SearchTree.Remove) and evicts it from the buffer as well, so the rest of the
// traversal stays consistent with the tree:
//
//	buffer [a b c], Next() → a, Next() → b
//	Remove():  tree loses b, buffer becomes [a c], cursor points at c
// ═══════════════════════════════════════════════════════════════════════════════
type treeIterator struct {
	tree      *SearchTree
	words     []*Word
	current   int  // Index in words of the next word to return
	removable bool // Set by Next, cleared by Remove
}

// Iterator creates a snapshot iterator over the current contents of the tree
func (t *SearchTree) Iterator() Iterator {
	return &treeIterator{
		tree:  t,
		words: inorder(t.root, make([]*Word, 0, t.size)),
	}
}

// HasNext reports whether Next would return a word
func (it *treeIterator) HasNext() bool {
	return it.current < len(it.words)
}

// Next returns the next word in ascending order, or (nil, false) at the end
func (it *treeIterator) Next() (*Word, bool) {
	if it.current >= len(it.words) {
		return nil, false
	}
	w := it.words[it.current]
	it.current++
	it.removable = true
	return w, true
}

// Remove deletes the word last returned by Next from the tree and the buffer
func (it *treeIterator) Remove() {
	if !it.removable {
		return
	}

	it.current--
	it.tree.Remove(it.words[it.current].key)
	it.words = slices.Delete(it.words, it.current, it.current+1)
	it.removable = false
}
