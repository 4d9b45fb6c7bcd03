package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNibbles(t *testing.T) {
	n := Nibbles(0xD12F)

	assert.Equal(t, uint8(0xD), n.Nibble(0))
	assert.Equal(t, uint8(0x1), n.Nibble(1))
	assert.Equal(t, uint8(0x2), n.Nibble(2))
	assert.Equal(t, uint8(0xF), n.Nibble(3))

	assert.Equal(t, uint8(0xD), n.Family())
	assert.Equal(t, uint8(0x1), n.X())
	assert.Equal(t, uint8(0x2), n.Y())
	assert.Equal(t, uint8(0xF), n.N())
	assert.Equal(t, uint8(0x2F), n.KK())
	assert.Equal(t, uint16(0x12F), n.NNN())
	assert.Equal(t, uint8(0xD1), n.High())
	assert.Equal(t, uint8(0x2F), n.Low())
}

func TestNibbles_OutOfRange(t *testing.T) {
	for _, index := range []int{-1, 4} {
		t.Run("index", func(t *testing.T) {
			defer func() {
				assert.NotNil(t, recover())
			}()
			Nibbles(0xFFFF).Nibble(index)
		})
	}
}

func TestAddressLabel(t *testing.T) {
	assert.Equal(t, "@addr_200", AddressLabel(0x200))
	assert.Equal(t, "@addr_abc", AddressLabel(0xABC))
	assert.Equal(t, "@addr_0", AddressLabel(0))
}
