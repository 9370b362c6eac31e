package pvm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeImmediate(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"empty decodes to zero", nil, 0},
		{"single positive byte", []byte{0x2a}, 42},
		{"single byte sign extends", []byte{0xa7}, 0xFFFFFFFFFFFFFFA7},
		{"0xff is minus one", []byte{0xff}, math.MaxUint64},
		{"high bit clear stays positive", []byte{0x7f}, 127},
		{"two bytes little endian", []byte{0x34, 0x12}, 0x1234},
		{"two bytes sign extended", []byte{0x00, 0x80}, 0xFFFFFFFFFFFF8000},
		{"four byte max positive", []byte{0xff, 0xff, 0xff, 0x7f}, 0x7FFFFFFF},
		{"four byte max negative", []byte{0x00, 0x00, 0x00, 0x80}, 0xFFFFFFFF80000000},
		{"three bytes", []byte{0x01, 0x02, 0x03}, 0x030201},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeImmediate(tt.data))
		})
	}
}

func TestDecodeImmediateMatchesSigned(t *testing.T) {
	// single-byte 0xA7 is -89 in two's complement, 0xFFFFFFA7 at 32 bits
	v := decodeImmediate([]byte{0xa7})
	assert.Equal(t, int64(-89), int64(v))
	assert.Equal(t, uint32(0xFFFFFFA7), uint32(v))
}

func TestDecodePackedUnsigned(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"empty", nil, 0},
		{"single byte no sign extension", []byte{0xff}, 255},
		{"two bytes", []byte{0x34, 0x12}, 0x1234},
		{"four bytes high bit set", []byte{0x00, 0x00, 0x00, 0x80}, 0x80000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodePackedUnsigned(tt.data))
		})
	}
}

func TestRawReg(t *testing.T) {
	assert.Equal(t, R0, rawReg(0))
	assert.Equal(t, R12, rawReg(12))
	// indices above 12 clamp to the last register
	assert.Equal(t, R12, rawReg(13))
	assert.Equal(t, R12, rawReg(15))
	// only the low nibble is read
	assert.Equal(t, R1, rawReg(0x01))
}

func TestImmLength(t *testing.T) {
	assert.Equal(t, uint64(0), immLength(0))
	assert.Equal(t, uint64(4), immLength(4))
	assert.Equal(t, uint64(4), immLength(7))
	assert.Equal(t, uint64(4), immLength(15))
}
