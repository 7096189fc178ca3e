package pagetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerKeyOrdering(t *testing.T) {
	t.Parallel()

	a := CustomerKey{CustomerID: 10, WarehouseID: 1, DistrictID: 1}
	b := CustomerKey{CustomerID: 10, WarehouseID: 9, DistrictID: 9}
	c := CustomerKey{CustomerID: 11}

	assert.True(t, a.Equal(b), "warehouse and district do not take part in equality")
	assert.False(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))

	assert.True(t, a.Valid())
	assert.False(t, CustomerKey{}.Valid())
	assert.Equal(t, "10/1/1", a.String())
}

func TestCustomerKeyCodec(t *testing.T) {
	t.Parallel()

	codec := CustomerKeyCodec{}
	buf := make([]byte, codec.Size())

	k := CustomerKey{CustomerID: 1 << 30, WarehouseID: -7, DistrictID: 123}
	codec.Encode(buf, k)
	assert.Equal(t, k, codec.Decode(buf))
	assert.Equal(t, CustomerKeySize, len(buf))
}

func TestIntCodec(t *testing.T) {
	t.Parallel()

	buf := make([]byte, IntCodec{}.Size())
	IntCodec{}.Encode(buf, -42)
	assert.Equal(t, Int(-42), IntCodec{}.Decode(buf))
}
