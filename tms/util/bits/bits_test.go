package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint(t *testing.T) {
	buf := []byte{0x14, 0x89, 0xF0}
	assert.Equal(t, uint32(5), Uint(buf, 0, 6))
	assert.Equal(t, uint32(0), Uint(buf, 6, 2))
	assert.Equal(t, uint32(0x489), Uint(buf, 4, 12))
	assert.Equal(t, uint32(0x1489F0), Uint(buf, 0, 24))
	assert.Equal(t, uint32(1), Uint(buf, 16, 1))
}

func TestRoundTripAllWidths(t *testing.T) {
	for width := 1; width <= 32; width++ {
		for _, start := range []int{0, 3, 7, 13} {
			buf := make([]byte, 8)
			max := uint32(1<<uint(width) - 1)
			if width == 32 {
				max = ^uint32(0)
			}
			for _, v := range []uint32{0, 1, max / 2, max} {
				SetUint(buf, start, width, v)
				require.Equal(t, v, Uint(buf, start, width), "width %d start %d", width, start)
			}
		}
	}
}

func TestSetUintLeavesNeighbours(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF}
	SetUint(buf, 5, 10, 0)
	assert.Equal(t, []byte{0xF8, 0x01, 0xFF}, buf)

	buf = make([]byte, 3)
	SetUint(buf, 5, 10, 0x3FF)
	assert.Equal(t, []byte{0x07, 0xFE, 0x00}, buf)
}

func TestSetUintTruncates(t *testing.T) {
	buf := make([]byte, 2)
	SetUint(buf, 0, 4, 0xFF)
	assert.Equal(t, []byte{0xF0, 0x00}, buf)
}

func TestInt(t *testing.T) {
	buf := make([]byte, 8)
	cases := []struct {
		width int
		value int32
	}{
		{8, -128}, {8, 127}, {8, -1}, {27, -54000000}, {27, 54000000},
		{28, -108000000}, {28, 108000000}, {28, -2696400}, {32, -1}, {2, -2},
	}
	for _, c := range cases {
		SetInt(buf, 9, c.width, c.value)
		assert.Equal(t, c.value, Int(buf, 9, c.width), "width %d", c.width)
	}
}

func TestIntPositiveHighField(t *testing.T) {
	buf := make([]byte, 2)
	SetUint(buf, 0, 8, 0x7F)
	assert.Equal(t, int32(127), Int(buf, 0, 8))
	SetUint(buf, 0, 8, 0x80)
	assert.Equal(t, int32(-128), Int(buf, 0, 8))
}

func TestBool(t *testing.T) {
	buf := make([]byte, 1)
	SetBool(buf, 3, true)
	assert.Equal(t, []byte{0x10}, buf)
	assert.True(t, Bool(buf, 3))
	SetBool(buf, 3, false)
	assert.False(t, Bool(buf, 3))
	assert.Equal(t, []byte{0x00}, buf)
}
