package pagetree

import (
	"fmt"

	"pagetree/internal/page"
)

// Pages encodes every node as a checksummed page image, in preorder. The
// tree keeps no persistent state; callers that need durability store the
// images themselves.
func (t *Tree[K]) Pages() ([][]byte, error) {
	var (
		images [][]byte
		err    error
	)
	size := t.codec.Size()
	t.preorder(func(n *node[K]) bool {
		flags := page.BranchPageFlag
		if n.isLeaf() {
			flags = page.LeafPageFlag
		}

		var img []byte
		img, err = page.Encode(flags, size, len(n.keys), t.capacity, func(i int, dst []byte) {
			t.codec.Encode(dst, n.keys[i])
		})
		if err != nil {
			err = fmt.Errorf("encode page %d: %w", len(images), err)
			return false
		}
		images = append(images, img)
		return true
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// DecodePage verifies a page image produced by Pages and decodes its keys.
func DecodePage[K any](codec Codec[K], img []byte) (leaf bool, keys []K, err error) {
	h, slots, err := page.Decode(img)
	if err != nil {
		return false, nil, err
	}
	if int(h.KeySize) != codec.Size() {
		return false, nil, fmt.Errorf("key size %d, codec expects %d: %w", h.KeySize, codec.Size(), ErrInvalidPageSize)
	}

	keys = make([]K, len(slots))
	for i, slot := range slots {
		keys[i] = codec.Decode(slot)
	}
	return h.IsLeaf(), keys, nil
}
