package pagetree

import (
	"fmt"
	"slices"
	"sort"
)

// searchThreshold is the key count above which node lookups switch from a
// linear scan to binary search.
const searchThreshold = 32

// node is one page of the tree. len(keys) is the number of live keys; it may
// reach capacity+1 only between an insert and the split that follows it.
type node[K Key[K]] struct {
	keys     []K
	children []*node[K] // Empty for leaves, len(keys)+1 otherwise
	parent   *node[K]   // Non-owning. Nil for the root
}

// newNode allocates a node with room for the overflow slot.
func newNode[K Key[K]](capacity int) *node[K] {
	return &node[K]{
		keys: make([]K, 0, capacity+1),
	}
}

func (n *node[K]) isLeaf() bool {
	return len(n.children) == 0
}

// findInsertPosition returns the index of the first key strictly greater than
// target, or len(keys) if there is none. Equal keys sort before target, so
// equals keep their insertion order. The same index selects the child to
// descend into.
func (n *node[K]) findInsertPosition(target K) int {
	if len(n.keys) < searchThreshold {
		pos := 0
		for pos < len(n.keys) && !target.Less(n.keys[pos]) {
			pos++
		}
		return pos
	}

	return sort.Search(len(n.keys), func(i int) bool {
		return target.Less(n.keys[i])
	})
}

// lowerBound returns the index of the first key not less than target.
func (n *node[K]) lowerBound(target K) int {
	if len(n.keys) < searchThreshold {
		pos := 0
		for pos < len(n.keys) && n.keys[pos].Less(target) {
			pos++
		}
		return pos
	}

	return sort.Search(len(n.keys), func(i int) bool {
		return !n.keys[i].Less(target)
	})
}

// insertAt places key at pos. A non-nil right is attached as the child
// immediately after the new key and adopted by n.
func (n *node[K]) insertAt(pos int, key K, right *node[K]) {
	n.keys = slices.Insert(n.keys, pos, key)
	if right != nil {
		n.children = slices.Insert(n.children, pos+1, right)
		right.parent = n
	}
}

// child returns children[i], panicking if the slot is absent.
func (n *node[K]) child(i int) *node[K] {
	if i < 0 || i >= len(n.children) || n.children[i] == nil {
		panic(fmt.Sprintf("pagetree: missing child %d of node with %d keys and %d children",
			i, len(n.keys), len(n.children)))
	}
	return n.children[i]
}

// childIndex returns the slot holding c, panicking if c is not a child of n.
func (n *node[K]) childIndex(c *node[K]) int {
	for i, child := range n.children {
		if child == c {
			return i
		}
	}
	panic("pagetree: split node not found in its parent")
}

// split divides an overflowed node. With M+1 keys the break point is
// bp = ceil((M+1)/2); keys[bp-1] is removed and returned for promotion, keys
// and children from bp onward move to the returned sibling, and n keeps
// keys[:bp-1] and children[:bp]. The sibling's parent is left unset.
func (n *node[K]) split(capacity int) (K, *node[K]) {
	if len(n.keys) != capacity+1 {
		panic(fmt.Sprintf("pagetree: split of node holding %d keys, capacity %d", len(n.keys), capacity))
	}

	bp := (len(n.keys) + 1) / 2
	promoted := n.keys[bp-1]

	sibling := newNode[K](capacity)
	sibling.keys = append(sibling.keys, n.keys[bp:]...)
	clear(n.keys[bp-1:])
	n.keys = n.keys[:bp-1]

	if !n.isLeaf() {
		sibling.children = make([]*node[K], 0, capacity+2)
		sibling.children = append(sibling.children, n.children[bp:]...)
		for _, c := range sibling.children {
			c.parent = sibling
		}
		clear(n.children[bp:])
		n.children = n.children[:bp]
	}

	return promoted, sibling
}
