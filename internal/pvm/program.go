package pvm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrMalformedProgram = errors.New("malformed program")

// Program the in-memory executable image assembled from the program
// container. Immutable once loaded; owned by one execution instance.
type Program struct {
	ROData    []byte
	RWData    []byte
	HeapPages uint16
	StackSize uint32
	Code      []byte
	JumpTable *JumpTable
}

// ParseProgram parses the program container:
//
//	E3(|o|) ⌢ E3(|w|) ⌢ E2(z) ⌢ E3(s) ⌢ o ⌢ w ⌢ E4(|c|) ⌢ c ⌢ j
//
// where j is the jump table section: one item-width byte followed by the
// packed entries, or nothing at all for programs without one. Any declared
// length exceeding the remaining buffer is ErrMalformedProgram. No
// instruction-level validation happens here; invalid code traps lazily
// during execution.
func ParseProgram(data []byte) (*Program, error) {
	const headerSize = 3 + 3 + 2 + 3
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: truncated header", ErrMalformedProgram)
	}
	roSize := uint24(data[0:3])
	rwSize := uint24(data[3:6])
	heapPages := binary.LittleEndian.Uint16(data[6:8])
	stackSize := uint24(data[8:11])
	rest := data[headerSize:]

	if uint64(len(rest)) < uint64(roSize)+uint64(rwSize) {
		return nil, fmt.Errorf("%w: data sections exceed buffer", ErrMalformedProgram)
	}
	roData := rest[:roSize]
	rest = rest[roSize:]
	rwData := rest[:rwSize]
	rest = rest[rwSize:]

	if len(rest) < 4 {
		return nil, fmt.Errorf("%w: truncated code length", ErrMalformedProgram)
	}
	codeLen := binary.LittleEndian.Uint32(rest[:4])
	rest = rest[4:]
	if uint64(len(rest)) < uint64(codeLen) {
		return nil, fmt.Errorf("%w: code section exceeds buffer", ErrMalformedProgram)
	}
	code := rest[:codeLen]
	rest = rest[codeLen:]

	jumpTable := &JumpTable{}
	if len(rest) > 0 {
		var err error
		jumpTable, err = NewJumpTable(rest[0], rest[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedProgram, err)
		}
	}

	return &Program{
		ROData:    bytes.Clone(roData),
		RWData:    bytes.Clone(rwData),
		HeapPages: heapPages,
		StackSize: stackSize,
		Code:      bytes.Clone(code),
		JumpTable: jumpTable,
	}, nil
}

func uint24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}
