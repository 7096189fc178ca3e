// Package pagetree implements an in-memory B-tree over any totally ordered key
// type, with nodes sized to a page budget. Inserts split overflowing nodes
// and promote keys upward; lookups descend from the root.
package pagetree

import "fmt"

// Tree is an in-memory B-tree whose nodes hold at most Capacity keys. The
// capacity is derived from a page-size budget and the key's encoded size.
//
// A Tree is not safe for concurrent use. A split can replace the root and
// reparent whole subtrees, so readers must not run alongside an Insert; see
// Locked for a wrapper that serializes access.
type Tree[K Key[K]] struct {
	root     *node[K]
	codec    Codec[K]
	capacity int
	count    int
	height   int

	duplicates DuplicatePolicy
	logger     Logger
}

// New creates an empty tree for keys encoded by codec.
func New[K Key[K]](codec Codec[K], options ...Option) (*Tree[K], error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	capacity, err := opts.capacityFor(codec.Size())
	if err != nil {
		return nil, fmt.Errorf("page size %d, key size %d: %w", opts.pageSize, codec.Size(), err)
	}

	return &Tree[K]{
		codec:      codec,
		capacity:   capacity,
		duplicates: opts.duplicates,
		logger:     opts.logger,
	}, nil
}

// Capacity returns M, the maximum number of keys a node holds between
// operations.
func (t *Tree[K]) Capacity() int {
	return t.capacity
}

// Len returns the number of keys stored.
func (t *Tree[K]) Len() int {
	return t.count
}

// Height returns the number of levels, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	return t.height
}

// Insert adds key to the tree. Equal keys are stored after existing equals
// unless the tree was built with RejectDuplicates.
func (t *Tree[K]) Insert(key K) error {
	if err := checkValid(key); err != nil {
		t.logger.Warn("rejected key", "op", "insert", "error", err)
		return err
	}

	if t.root == nil {
		t.root = newNode[K](t.capacity)
		t.root.keys = append(t.root.keys, key)
		t.count = 1
		t.height = 1
		return nil
	}

	if t.duplicates == RejectDuplicates {
		if _, ok := t.lookup(key); ok {
			t.logger.Warn("rejected key", "op", "insert", "error", ErrDuplicateKey)
			return ErrDuplicateKey
		}
	}

	leaf := t.descend(key)
	leaf.insertAt(leaf.findInsertPosition(key), key, nil)
	t.count++
	t.splitUpward(leaf)
	return nil
}

// descend walks from the root to the leaf that key belongs in.
func (t *Tree[K]) descend(key K) *node[K] {
	n := t.root
	for !n.isLeaf() {
		n = n.child(n.findInsertPosition(key))
	}
	return n
}

// splitUpward resolves an overflow at n, promoting keys into ancestors until
// a node absorbs the key without overflowing or a new root is created.
func (t *Tree[K]) splitUpward(n *node[K]) {
	for len(n.keys) > t.capacity {
		promoted, sibling := n.split(t.capacity)

		parent := n.parent
		if parent == nil {
			root := newNode[K](t.capacity)
			root.keys = append(root.keys, promoted)
			root.children = make([]*node[K], 0, t.capacity+2)
			root.children = append(root.children, n, sibling)
			n.parent = root
			sibling.parent = root
			t.root = root
			t.height++
			t.logger.Info("root split", "height", t.height, "capacity", t.capacity, "keys", t.count)
			return
		}

		parent.insertAt(parent.childIndex(n), promoted, sibling)
		n = parent
	}
}

// Search returns the stored entry equal to target. The pointer refers to the
// tree's own copy and stays valid only until the next Insert.
func (t *Tree[K]) Search(target K) (*K, error) {
	if err := checkValid(target); err != nil {
		t.logger.Warn("rejected key", "op", "search", "error", err)
		return nil, err
	}
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	if k, ok := t.lookup(target); ok {
		return k, nil
	}
	return nil, ErrKeyNotFound
}

// lookup finds the first entry equal to target met on the descent path.
func (t *Tree[K]) lookup(target K) (*K, bool) {
	for n := t.root; n != nil; {
		i := n.lowerBound(target)
		if i < len(n.keys) && target.Equal(n.keys[i]) {
			return &n.keys[i], true
		}
		if n.isLeaf() {
			return nil, false
		}
		n = n.child(i)
	}
	return nil, false
}
