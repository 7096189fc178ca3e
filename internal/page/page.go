// Package page encodes tree nodes as self-checking page images. The tree never
// persists pages itself; images are handed to whatever store the caller uses.
package page

import (
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

const (
	LeafPageFlag   uint16 = 0x01
	BranchPageFlag uint16 = 0x02

	HeaderSize = 24 // Magic(4) + Flags(2) + NumKeys(2) + KeySize(4) + Reserved(4) + Checksum(8)

	// MaxKeys is the most keys a single image can describe
	MaxKeys = 0xFFFF

	checksumOffset = 16

	// MagicNumber for page image identification ("ptre" in hex)
	MagicNumber uint32 = 0x70747265
)

var (
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidChecksum    = errors.New("invalid checksum")
	ErrPageOverflow       = errors.New("page overflow")
	ErrTruncated          = errors.New("page image truncated")
)

// Header is the fixed-size prefix of a page image.
//
// ┌──────────────────────────────────────────────────────────────┐
// │ Magic (4) │ Flags (2) │ NumKeys (2) │ KeySize (4) │ Rsvd (4) │
// ├──────────────────────────────────────────────────────────────┤
// │ Checksum (8): xxhash64 of the fields above and the key area  │
// ├──────────────────────────────────────────────────────────────┤
// │ Key[0] | Key[1] | ... | Key[NumKeys-1]   (KeySize each)      │
// └──────────────────────────────────────────────────────────────┘
type Header struct {
	Flags    uint16
	NumKeys  uint16
	KeySize  uint32
	Checksum uint64
}

// IsLeaf reports whether the image was taken from a leaf node.
func (h Header) IsLeaf() bool {
	return h.Flags&LeafPageFlag != 0
}

// Encode builds an image of numKeys fixed-size keys. put is called once per
// key with a dst slice of exactly keySize bytes.
func Encode(flags uint16, keySize, numKeys, maxKeys int, put func(i int, dst []byte)) ([]byte, error) {
	if keySize <= 0 {
		return nil, ErrInvalidPageSize
	}
	if numKeys > maxKeys || numKeys > MaxKeys {
		return nil, ErrPageOverflow
	}

	img := make([]byte, HeaderSize+numKeys*keySize)
	data := img[HeaderSize:]
	for i := 0; i < numKeys; i++ {
		put(i, data[i*keySize:(i+1)*keySize])
	}

	binary.LittleEndian.PutUint32(img[0:], MagicNumber)
	binary.LittleEndian.PutUint16(img[4:], flags)
	binary.LittleEndian.PutUint16(img[6:], uint16(numKeys))
	binary.LittleEndian.PutUint32(img[8:], uint32(keySize))
	binary.LittleEndian.PutUint64(img[checksumOffset:], checksum(img))
	return img, nil
}

// checksum hashes every header field except the checksum itself, followed by
// the key area.
func checksum(img []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write(img[:checksumOffset])
	_, _ = d.Write(img[HeaderSize:])
	return d.Sum64()
}

// ReadHeader parses the header without verifying the key area.
func ReadHeader(img []byte) (Header, error) {
	if len(img) < HeaderSize {
		return Header{}, ErrTruncated
	}
	if binary.LittleEndian.Uint32(img[0:]) != MagicNumber {
		return Header{}, ErrInvalidMagicNumber
	}
	return Header{
		Flags:    binary.LittleEndian.Uint16(img[4:]),
		NumKeys:  binary.LittleEndian.Uint16(img[6:]),
		KeySize:  binary.LittleEndian.Uint32(img[8:]),
		Checksum: binary.LittleEndian.Uint64(img[checksumOffset:]),
	}, nil
}

// Decode validates an image and returns its header and key slots. The slots
// alias img.
func Decode(img []byte) (Header, [][]byte, error) {
	h, err := ReadHeader(img)
	if err != nil {
		return Header{}, nil, err
	}
	if h.KeySize == 0 {
		return Header{}, nil, ErrInvalidPageSize
	}

	data := img[HeaderSize:]
	size := int(h.KeySize)
	if len(data) != int(h.NumKeys)*size {
		return Header{}, nil, ErrTruncated
	}
	if checksum(img) != h.Checksum {
		return Header{}, nil, ErrInvalidChecksum
	}

	slots := make([][]byte, h.NumKeys)
	for i := range slots {
		slots[i] = data[i*size : (i+1)*size]
	}
	return h, slots, nil
}
