package page

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putUint32Keys(keys []uint32) func(int, []byte) {
	return func(i int, dst []byte) {
		binary.LittleEndian.PutUint32(dst, keys[i])
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	keys := []uint32{3, 17, 42}
	img, err := Encode(LeafPageFlag, 4, len(keys), 8, putUint32Keys(keys))
	require.NoError(t, err)
	assert.Len(t, img, HeaderSize+len(keys)*4)

	h, slots, err := Decode(img)
	require.NoError(t, err)
	assert.True(t, h.IsLeaf())
	assert.Equal(t, uint16(3), h.NumKeys)
	assert.Equal(t, uint32(4), h.KeySize)

	require.Len(t, slots, 3)
	for i, slot := range slots {
		assert.Equal(t, keys[i], binary.LittleEndian.Uint32(slot), "slot %d", i)
	}
}

func TestEncodeBranch(t *testing.T) {
	t.Parallel()

	img, err := Encode(BranchPageFlag, 4, 1, 4, putUint32Keys([]uint32{9}))
	require.NoError(t, err)

	h, err := ReadHeader(img)
	require.NoError(t, err)
	assert.False(t, h.IsLeaf())
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	img, err := Encode(LeafPageFlag, 8, 0, 4, nil)
	require.NoError(t, err)
	assert.Len(t, img, HeaderSize)

	h, slots, err := Decode(img)
	require.NoError(t, err)
	assert.Zero(t, h.NumKeys)
	assert.Empty(t, slots)
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keySize int
		numKeys int
		maxKeys int
		want    error
	}{
		{name: "zero_key_size", keySize: 0, numKeys: 1, maxKeys: 4, want: ErrInvalidPageSize},
		{name: "overflow", keySize: 4, numKeys: 5, maxKeys: 4, want: ErrPageOverflow},
		{name: "past_header_limit", keySize: 1, numKeys: MaxKeys + 1, maxKeys: MaxKeys + 1, want: ErrPageOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(LeafPageFlag, tt.keySize, tt.numKeys, tt.maxKeys, func(int, []byte) {})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeCorruption(t *testing.T) {
	t.Parallel()

	img, err := Encode(LeafPageFlag, 4, 2, 4, putUint32Keys([]uint32{1, 2}))
	require.NoError(t, err)

	t.Run("flipped_key_byte", func(t *testing.T) {
		bad := append([]byte(nil), img...)
		bad[HeaderSize] ^= 0xFF
		_, _, err := Decode(bad)
		assert.ErrorIs(t, err, ErrInvalidChecksum)
	})

	t.Run("flipped_flags", func(t *testing.T) {
		bad := append([]byte(nil), img...)
		bad[4] = byte(BranchPageFlag)
		_, _, err := Decode(bad)
		assert.ErrorIs(t, err, ErrInvalidChecksum)
	})

	t.Run("reserved_bytes", func(t *testing.T) {
		bad := append([]byte(nil), img...)
		bad[12] = 0x7F
		_, _, err := Decode(bad)
		assert.ErrorIs(t, err, ErrInvalidChecksum)
	})

	t.Run("bad_magic", func(t *testing.T) {
		bad := append([]byte(nil), img...)
		bad[0] = 0
		_, _, err := Decode(bad)
		assert.ErrorIs(t, err, ErrInvalidMagicNumber)
	})

	t.Run("short_header", func(t *testing.T) {
		_, _, err := Decode(img[:HeaderSize-1])
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("short_key_area", func(t *testing.T) {
		_, _, err := Decode(img[:len(img)-1])
		assert.ErrorIs(t, err, ErrTruncated)
	})
}
