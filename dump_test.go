package pagetree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpPreorderCopiesKeys(t *testing.T) {
	t.Parallel()

	tree := newIntTree(t, 4)
	insertInts(t, tree, 1, 2, 3)

	dump := tree.DumpPreorder()
	dump[0][0] = 99

	found, err := tree.Search(1)
	assert.NoError(t, err)
	assert.Equal(t, Int(1), *found)
}

func TestString(t *testing.T) {
	t.Parallel()

	tree := newIntTree(t, 2)
	insertInts(t, tree, 1, 2, 3, 4, 5, 6, 7)

	out := tree.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Capacity 2 with seven ascending keys gives three levels and seven nodes
	assert.Equal(t, 3, tree.Height())
	assert.Len(t, lines, len(tree.DumpPreorder()))
	assert.Equal(t, "[4]", lines[0])
	for _, want := range []string{"[2]", "[6]", "[1]", "[3]", "[5]", "[7]"} {
		assert.Contains(t, out, want)
	}
}
