package pvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpTableDecode(t *testing.T) {
	table, err := NewJumpTable(2, []byte{0x05, 0x00, 0x10, 0x00, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	dest, ok := table.Destination(0)
	assert.True(t, ok)
	assert.Equal(t, uint64(5), dest)
	dest, ok = table.Destination(2)
	assert.True(t, ok)
	assert.Equal(t, uint64(0xffff), dest)
}

func TestJumpTableEntriesAreUnsigned(t *testing.T) {
	// 0xFF at width one is entry 255, never sign extended
	table, err := NewJumpTable(1, []byte{0xff})
	require.NoError(t, err)
	dest, ok := table.Destination(0)
	assert.True(t, ok)
	assert.Equal(t, uint64(255), dest)
}

func TestJumpTableIndexWrapsModuloLength(t *testing.T) {
	table, err := NewJumpTable(1, []byte{10, 20, 30})
	require.NoError(t, err)

	for _, tt := range []struct {
		index uint64
		want  uint64
	}{
		{0, 10}, {1, 20}, {2, 30},
		{3, 10}, {4, 20},
		{300, 10},
		{1<<40 + 2, 30},
	} {
		dest, ok := table.Destination(tt.index)
		assert.True(t, ok)
		assert.Equal(t, tt.want, dest, "index %d", tt.index)
	}
}

func TestJumpTableEmpty(t *testing.T) {
	table, err := NewJumpTable(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	_, ok := table.Destination(0)
	assert.False(t, ok)
}

func TestJumpTableInvalid(t *testing.T) {
	tests := []struct {
		name      string
		itemWidth byte
		packed    []byte
	}{
		{"zero width with payload", 0, []byte{1, 2}},
		{"width above four", 5, make([]byte, 10)},
		{"length not a multiple of width", 2, []byte{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJumpTable(tt.itemWidth, tt.packed)
			assert.Error(t, err)
		})
	}
}
