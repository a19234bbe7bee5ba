package wordindex

import "strings"

// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS A SORTED LINKED LIST?
// ═══════════════════════════════════════════════════════════════════════════════
// A doubly-linked list whose nodes are always kept in ascending key order.
//
// VISUAL REPRESENTATION:
// ----------------------
//
//	head                                              tail
//	 ↓                                                  ↓
//	nil ← [2 a] ⇄ [3 b] ⇄ [1 c] ⇄ [4 fox] ⇄ [1 zebra] → nil
//
// - next links own the chain from head to tail
// - prev links point back and are only used for O(1) unlinking
// - head.prev and tail.next are always nil
//
// COSTS:
// ------
// - Add, Get, Remove: O(n) linear scan
// - Size: O(1)
// - Iteration: O(n), live view of the list
// ═══════════════════════════════════════════════════════════════════════════════

type listNode struct {
	word *Word
	next *listNode // Successor (owning)
	prev *listNode // Predecessor (back-reference)
}

// SortedList is an Index backed by a sorted doubly-linked list
type SortedList struct {
	head *listNode
	tail *listNode
	size int
}

// NewSortedList creates an empty sorted list
func NewSortedList() *SortedList {
	return &SortedList{}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ADD: Insert or Increment
// ═══════════════════════════════════════════════════════════════════════════════
// Four cases, checked in order:
//
//  1. Empty list:        new node becomes head and tail
//  2. key < head.key:    new node becomes the head
//  3. key == some key:   increment that word's count (size unchanged)
//  4. otherwise:         splice after the last node with a smaller key,
//                        becoming the new tail if that node was the tail
//
// SPLICE EXAMPLE (adding "b"):
// ----------------------------
// Before:  [a] ⇄ [c]
// After:   [a] ⇄ [b] ⇄ [c]
// ═══════════════════════════════════════════════════════════════════════════════

// Add inserts key in sorted position, or increments its count if present
func (l *SortedList) Add(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	// Case 1: empty list
	if l.head == nil {
		node := &listNode{word: &Word{key: key, count: 1}}
		l.head, l.tail = node, node
		l.size++
		return nil
	}

	// Case 2: new head
	if strings.Compare(key, l.head.word.key) < 0 {
		node := &listNode{word: &Word{key: key, count: 1}, next: l.head}
		l.head.prev = node
		l.head = node
		l.size++
		return nil
	}

	// Walk to the last node whose key is <= key
	current := l.head
	for current.next != nil && strings.Compare(key, current.next.word.key) >= 0 {
		current = current.next
	}

	// Case 3: duplicate
	if current.word.key == key {
		current.word.Increment()
		return nil
	}

	// Case 4: splice after current
	node := &listNode{word: &Word{key: key, count: 1}, prev: current, next: current.next}
	if current.next != nil {
		current.next.prev = node
	} else {
		l.tail = node
	}
	current.next = node
	l.size++
	return nil
}

// Get returns the count stored for key, or NotFound
//
// The scan stops early once it passes the position where key would sit.
func (l *SortedList) Get(key string) (int, error) {
	if key == "" {
		return NotFound, ErrInvalidKey
	}
	if node := l.find(key); node != nil {
		return node.word.count, nil
	}
	return NotFound, nil
}

// find returns the node holding key, or nil
func (l *SortedList) find(key string) *listNode {
	for current := l.head; current != nil; current = current.next {
		switch c := strings.Compare(key, current.word.key); {
		case c == 0:
			return current
		case c < 0:
			return nil
		}
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// REMOVE: Unlinking a Node
// ═══════════════════════════════════════════════════════════════════════════════
// Removing [b] from [a] ⇄ [b] ⇄ [c]:
//
//	a.next = c
//	c.prev = a
//
// When the node is a boundary there is no neighbour to relink on that side,
// so head or tail moves instead:
//
//	removing head: head = node.next
//	removing tail: tail = node.prev
//	sole element:  both become nil
//
// Every structural removal decrements size exactly once.
// ═══════════════════════════════════════════════════════════════════════════════

// Remove deletes key from the list
//
// Removing an empty key, a missing key, or from an empty list is a no-op.
func (l *SortedList) Remove(key string) {
	if key == "" || l.head == nil {
		return
	}
	if node := l.find(key); node != nil {
		l.unlink(node)
	}
}

// unlink detaches node from its neighbours and fixes the boundaries
//
// The removed node keeps its own prev/next pointers so an iterator parked on
// it can still see where it used to be.
func (l *SortedList) unlink(node *listNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	l.size--
}

// Size returns the number of distinct keys in the list
func (l *SortedList) Size() int {
	return l.size
}

// Equals reports structural equality with any other Index
func (l *SortedList) Equals(other Index) bool {
	return Equal(l, other)
}

// String renders the list as "[<count>  <key>, ...]"
func (l *SortedList) String() string {
	return render(l.Iterator())
}

// ═══════════════════════════════════════════════════════════════════════════════
// ITERATOR: A Live View of the List
// ═══════════════════════════════════════════════════════════════════════════════
// The iterator walks the real nodes, so changes made to the list ahead of the
// cursor are visible to it.
//
// CURSORS:
// --------
//   - lastReturned: the node most recently handed out by Next (nil before the
//     first call, or after the head was removed through the iterator)
//   - next-to-return: lastReturned.next, or head while lastReturned is nil
//
// Deriving next-to-return from lastReturned on every step is what keeps the
// view live: an insert directly after lastReturned is picked up by the next
// call to Next.
//
// REMOVE WALKTHROUGH:
// -------------------
// List [a] ⇄ [b] ⇄ [c], Next() returned b:
//
//	Remove(): unlink b        → [a] ⇄ [c]
//	          lastReturned = a
//	Next():   returns a.next  → c
//
// PRECONDITION:
// -------------
// Removing lastReturned through SortedList.Remove while the iterator is in
// use is undefined; use Iterator.Remove for mid-traversal deletion.
// ═══════════════════════════════════════════════════════════════════════════════
type listIterator struct {
	list         *SortedList
	lastReturned *listNode
	removable    bool // Set by Next, cleared by Remove
}

// Iterator creates a live iterator positioned before the first word
func (l *SortedList) Iterator() Iterator {
	return &listIterator{list: l}
}

func (it *listIterator) nextToReturn() *listNode {
	if it.lastReturned == nil {
		return it.list.head
	}
	return it.lastReturned.next
}

// HasNext reports whether Next would return a word
func (it *listIterator) HasNext() bool {
	return it.nextToReturn() != nil
}

// Next returns the next word in ascending order, or (nil, false) at the end
func (it *listIterator) Next() (*Word, bool) {
	node := it.nextToReturn()
	if node == nil {
		return nil, false
	}
	it.lastReturned = node
	it.removable = true
	return node.word, true
}

// Remove deletes the word last returned by Next from the list
//
// Cases handled by unlink:
//   - sole element: head and tail both become nil
//   - head:         head moves to the successor
//   - tail:         tail moves to the predecessor
//   - interior:     neighbours are linked to each other
func (it *listIterator) Remove() {
	if !it.removable || it.lastReturned == nil {
		return
	}

	removed := it.lastReturned
	it.list.unlink(removed)

	it.lastReturned = removed.prev
	it.removable = false
}
