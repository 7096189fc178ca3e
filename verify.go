package pagetree

import "fmt"

// Verify walks the whole tree and checks its structural invariants: key
// order within and across nodes, child counts, parent back-references (each
// child held in exactly one slot), the capacity bound and equal leaf depth. The first violation is returned
// wrapped in ErrCorruption.
func (t *Tree[K]) Verify() error {
	if t.root == nil {
		if t.count != 0 || t.height != 0 {
			return fmt.Errorf("%w: empty tree reports %d keys, height %d", ErrCorruption, t.count, t.height)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorruption)
	}

	v := verifier[K]{capacity: t.capacity, leafDepth: -1}
	if err := v.walk(t.root, 1, nil, nil); err != nil {
		return err
	}
	if v.leafDepth != t.height {
		return fmt.Errorf("%w: leaves at depth %d, height is %d", ErrCorruption, v.leafDepth, t.height)
	}
	if v.keys != t.count {
		return fmt.Errorf("%w: found %d keys, tree reports %d", ErrCorruption, v.keys, t.count)
	}
	return nil
}

type verifier[K Key[K]] struct {
	capacity  int
	leafDepth int
	keys      int
}

// walk checks n, whose keys must all lie within [lo, hi]. Bounds are
// inclusive because equal keys may sit on either side of a separator.
func (v *verifier[K]) walk(n *node[K], depth int, lo, hi *K) error {
	if len(n.keys) == 0 {
		return fmt.Errorf("%w: empty node at depth %d", ErrCorruption, depth)
	}
	if len(n.keys) > v.capacity {
		return fmt.Errorf("%w: node at depth %d holds %d keys, capacity %d", ErrCorruption, depth, len(n.keys), v.capacity)
	}
	v.keys += len(n.keys)

	for i, k := range n.keys {
		if i > 0 && k.Less(n.keys[i-1]) {
			return fmt.Errorf("%w: keys out of order at depth %d index %d", ErrCorruption, depth, i)
		}
		if lo != nil && k.Less(*lo) {
			return fmt.Errorf("%w: key at depth %d index %d below separator", ErrCorruption, depth, i)
		}
		if hi != nil && (*hi).Less(k) {
			return fmt.Errorf("%w: key at depth %d index %d above separator", ErrCorruption, depth, i)
		}
	}

	if n.isLeaf() {
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: leaves at depths %d and %d", ErrCorruption, v.leafDepth, depth)
		}
		return nil
	}

	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("%w: node at depth %d has %d keys and %d children", ErrCorruption, depth, len(n.keys), len(n.children))
	}
	seen := make(map[*node[K]]int, len(n.children))
	for i, c := range n.children {
		if c == nil {
			return fmt.Errorf("%w: nil child %d at depth %d", ErrCorruption, i, depth)
		}
		if j, ok := seen[c]; ok {
			return fmt.Errorf("%w: child in slots %d and %d at depth %d", ErrCorruption, j, i, depth)
		}
		seen[c] = i
		if c.parent != n {
			return fmt.Errorf("%w: child %d at depth %d has wrong parent", ErrCorruption, i, depth)
		}

		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		}
		if err := v.walk(c, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
