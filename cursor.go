package pagetree

import "iter"

// preorder visits nodes root first, then children left to right.
func (t *Tree[K]) preorder(yield func(n *node[K]) bool) {
	if t.root == nil {
		return
	}
	stack := []*node[K]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n) {
			return
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

// LinearScan evaluates pred(target, k) for every stored key and yields the
// entries where it holds. Keys are visited in node preorder, not key order.
// Use it for criteria the key ordering cannot express as a range.
func (t *Tree[K]) LinearScan(target K, pred func(target, k K) bool) (iter.Seq[*K], error) {
	if err := checkValid(target); err != nil {
		t.logger.Warn("rejected key", "op", "scan", "error", err)
		return nil, err
	}
	if t.root == nil {
		return nil, ErrEmptyTree
	}

	return func(yield func(*K) bool) {
		t.preorder(func(n *node[K]) bool {
			for i := range n.keys {
				if pred(target, n.keys[i]) && !yield(&n.keys[i]) {
					return false
				}
			}
			return true
		})
	}, nil
}

// Ascend yields every entry in key order.
func (t *Tree[K]) Ascend() iter.Seq[*K] {
	return func(yield func(*K) bool) {
		if t.root != nil {
			t.ascend(t.root, nil, nil, yield)
		}
	}
}

// Range yields the entries k with lo <= k < hi in key order.
func (t *Tree[K]) Range(lo, hi K) (iter.Seq[*K], error) {
	for _, bound := range []K{lo, hi} {
		if err := checkValid(bound); err != nil {
			t.logger.Warn("rejected key", "op", "range", "error", err)
			return nil, err
		}
	}

	return func(yield func(*K) bool) {
		if t.root != nil && lo.Less(hi) {
			t.ascend(t.root, &lo, &hi, yield)
		}
	}, nil
}

// ascend walks the subtree at n in order. Subtrees entirely below lo are
// skipped and the walk stops at the first key not below hi. It returns false
// once the walk should stop.
func (t *Tree[K]) ascend(n *node[K], lo, hi *K, yield func(*K) bool) bool {
	for i := 0; i <= len(n.keys); i++ {
		// children[i] holds keys no greater than keys[i]
		if !n.isLeaf() && (lo == nil || i == len(n.keys) || !n.keys[i].Less(*lo)) {
			if !t.ascend(n.child(i), lo, hi, yield) {
				return false
			}
		}
		if i == len(n.keys) {
			break
		}

		key := n.keys[i]
		if hi != nil && !key.Less(*hi) {
			return false
		}
		if lo != nil && key.Less(*lo) {
			continue
		}
		if !yield(&n.keys[i]) {
			return false
		}
	}
	return true
}
