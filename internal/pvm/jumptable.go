package pvm

// JumpTable the side array of basic-block entry offsets used by indirect
// control transfer. Entries are packed little-endian at a fixed width of
// 0 to 4 bytes each.
type JumpTable struct {
	entries []uint32
}

// NewJumpTable splits packed into fixed-width chunks of itemWidth bytes and
// decodes each as an unsigned code offset. itemWidth of zero yields an empty
// table. A byte length that is not a multiple of itemWidth is an invariant
// violation and fails fast.
func NewJumpTable(itemWidth byte, packed []byte) (*JumpTable, error) {
	if itemWidth == 0 {
		if len(packed) != 0 {
			return nil, ErrPanicf("jump table with zero item width carries %d bytes", len(packed))
		}
		return &JumpTable{}, nil
	}
	if itemWidth > maxImmLength {
		return nil, ErrPanicf("jump table item width %d exceeds maximum %d", itemWidth, maxImmLength)
	}
	if len(packed)%int(itemWidth) != 0 {
		return nil, ErrPanicf("jump table byte length %d is not a multiple of item width %d", len(packed), itemWidth)
	}

	t := &JumpTable{entries: make([]uint32, len(packed)/int(itemWidth))}
	for i := range t.entries {
		chunk := packed[i*int(itemWidth) : (i+1)*int(itemWidth)]
		t.entries[i] = decodePackedUnsigned(chunk)
	}
	return t, nil
}

func (t *JumpTable) Len() int {
	return len(t.entries)
}

// Destination resolves a logical index to a code offset, wrapping modulo the
// table length. The wrap means an indirect jump never indexes out of bounds.
// Returns false only for the empty table.
func (t *JumpTable) Destination(logicalIndex uint64) (uint64, bool) {
	if len(t.entries) == 0 {
		return 0, false
	}
	return uint64(t.entries[logicalIndex%uint64(len(t.entries))]), true
}
