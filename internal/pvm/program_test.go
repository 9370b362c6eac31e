package pvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgram(t *testing.T) {
	ro := []byte{0x01, 0x02, 0x03}
	rw := []byte{0x04, 0x05}
	code := prog(asmRegImm(LoadImm, R1, 42, 1), asmNone(Halt))
	blob := container(ro, rw, 4, 4096, code, jumpTableBytes(2, 0, 3))

	program, err := ParseProgram(blob)
	require.NoError(t, err)
	assert.Equal(t, ro, program.ROData)
	assert.Equal(t, rw, program.RWData)
	assert.Equal(t, uint16(4), program.HeapPages)
	assert.Equal(t, uint32(4096), program.StackSize)
	assert.Equal(t, code, program.Code)
	assert.Equal(t, 2, program.JumpTable.Len())

	dest, ok := program.JumpTable.Destination(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), dest)
}

func TestParseProgramNoJumpTable(t *testing.T) {
	// nothing after the code section means an empty table
	blob := container(nil, nil, 0, 0, asmNone(Trap), nil)
	program, err := ParseProgram(blob)
	require.NoError(t, err)
	assert.Equal(t, 0, program.JumpTable.Len())
}

func TestParseProgramEmptySections(t *testing.T) {
	blob := container(nil, nil, 0, 0, nil, nil)
	program, err := ParseProgram(blob)
	require.NoError(t, err)
	assert.Empty(t, program.ROData)
	assert.Empty(t, program.RWData)
	assert.Empty(t, program.Code)
}

func TestParseProgramMalformed(t *testing.T) {
	valid := container([]byte{1}, []byte{2}, 0, 0, asmNone(Trap), nil)
	tests := []struct {
		name string
		blob []byte
	}{
		{"empty", nil},
		{"truncated header", valid[:7]},
		{"data sections exceed buffer", prog(immBytes(100, 3), immBytes(0, 3), immBytes(0, 2), immBytes(0, 3), []byte{1, 2, 3})},
		{"missing code length", valid[:11]},
		{"code length exceeds buffer", prog(immBytes(0, 3), immBytes(0, 3), immBytes(0, 2), immBytes(0, 3), immBytes(50, 4), []byte{1, 2})},
		{"bad jump table width", container(nil, nil, 0, 0, asmNone(Trap), jumpTableBytes(9, 1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProgram(tt.blob)
			assert.ErrorIs(t, err, ErrMalformedProgram)
		})
	}
}

func TestParseProgramClonesSections(t *testing.T) {
	blob := container([]byte{0xaa}, nil, 0, 0, asmNone(Trap), nil)
	program, err := ParseProgram(blob)
	require.NoError(t, err)

	blob[11] = 0x55
	assert.Equal(t, []byte{0xaa}, program.ROData)
}
