package pagetree

import "encoding/binary"

// Key is the ordering contract a stored type must satisfy. Less must be a
// strict total order over valid keys and Equal must agree with it: for valid
// a and b exactly one of a.Less(b), b.Less(a), a.Equal(b) holds.
type Key[K any] interface {
	Less(other K) bool
	Equal(other K) bool
}

// validator is implemented by keys that can be uninitialized. A key whose
// Valid method returns false is never compared; the operation returns
// ErrInvalidComparison instead.
type validator interface {
	Valid() bool
}

func checkValid[K any](k K) error {
	if v, ok := any(k).(validator); ok && !v.Valid() {
		return ErrInvalidComparison
	}
	return nil
}

// Codec gives a key type its fixed serialized form. Size drives node
// capacity; Encode and Decode are used for page images.
type Codec[K any] interface {
	Size() int
	Encode(dst []byte, k K)
	Decode(src []byte) K
}

// Int is a plain integer key.
type Int int64

func (i Int) Less(other Int) bool  { return i < other }
func (i Int) Equal(other Int) bool { return i == other }

// IntCodec encodes Int as 8 little-endian bytes.
type IntCodec struct{}

func (IntCodec) Size() int { return 8 }

func (IntCodec) Encode(dst []byte, k Int) {
	binary.LittleEndian.PutUint64(dst, uint64(k))
}

func (IntCodec) Decode(src []byte) Int {
	return Int(binary.LittleEndian.Uint64(src))
}
