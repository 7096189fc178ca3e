package pagetree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// DumpPreorder returns a copy of each node's keys, nodes in preorder. It is
// meant for tests and debugging; the shape is not a stable format.
func (t *Tree[K]) DumpPreorder() [][]K {
	var out [][]K
	t.preorder(func(n *node[K]) bool {
		out = append(out, append([]K(nil), n.keys...))
		return true
	})
	return out
}

// String renders the tree one node per line, children indented under their
// parent.
func (t *Tree[K]) String() string {
	if t.root == nil {
		return "<empty>"
	}
	tree := treeprint.NewWithRoot(fmt.Sprint(t.root.keys))
	addChildren(tree, t.root)
	return tree.String()
}

func addChildren[K Key[K]](branch treeprint.Tree, n *node[K]) {
	for _, c := range n.children {
		if c.isLeaf() {
			branch.AddNode(fmt.Sprint(c.keys))
			continue
		}
		addChildren(branch.AddBranch(fmt.Sprint(c.keys)), c)
	}
}
