package pagetree

import (
	"encoding/binary"
	"fmt"
)

// CustomerKey identifies a customer record by customer, warehouse and district.
// Ordering and equality look at CustomerID only; WarehouseID and DistrictID are
// carried with the key, so a search template needs only CustomerID set and
// the matched entry supplies the rest.
type CustomerKey struct {
	CustomerID  int32
	WarehouseID int32
	DistrictID  int32
}

// Valid reports whether the key has been initialized. Customer IDs start at 1.
func (c CustomerKey) Valid() bool {
	return c.CustomerID > 0
}

func (c CustomerKey) Less(other CustomerKey) bool {
	return c.CustomerID < other.CustomerID
}

func (c CustomerKey) Equal(other CustomerKey) bool {
	return c.CustomerID == other.CustomerID
}

func (c CustomerKey) String() string {
	return fmt.Sprintf("%d/%d/%d", c.CustomerID, c.WarehouseID, c.DistrictID)
}

// CustomerKeySize is the encoded size of a CustomerKey in bytes.
const CustomerKeySize = 12

// CustomerKeyCodec encodes CustomerKey as three little-endian int32 values.
type CustomerKeyCodec struct{}

func (CustomerKeyCodec) Size() int { return CustomerKeySize }

func (CustomerKeyCodec) Encode(dst []byte, k CustomerKey) {
	binary.LittleEndian.PutUint32(dst[0:], uint32(k.CustomerID))
	binary.LittleEndian.PutUint32(dst[4:], uint32(k.WarehouseID))
	binary.LittleEndian.PutUint32(dst[8:], uint32(k.DistrictID))
}

func (CustomerKeyCodec) Decode(src []byte) CustomerKey {
	return CustomerKey{
		CustomerID:  int32(binary.LittleEndian.Uint32(src[0:])),
		WarehouseID: int32(binary.LittleEndian.Uint32(src[4:])),
		DistrictID:  int32(binary.LittleEndian.Uint32(src[8:])),
	}
}
