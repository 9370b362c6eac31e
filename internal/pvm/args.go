package pvm

// maximum number of bytes an immediate or offset may occupy in the
// instruction stream; longer length fields are clamped down to this
const maxImmLength = 4

// decodeImmediate X_n little-endian decode of 0 to 4 bytes, sign-extended
// from the high bit of the most significant supplied byte. An empty slice
// decodes to zero. Total for every input of length ≤ 4.
func decodeImmediate(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}
	var v uint64
	for i, b := range data {
		v |= uint64(b) << (8 * i)
	}
	return sext(v, uint64(len(data)))
}

// decodePackedUnsigned the unsigned analogue of decodeImmediate, used for
// fixed-width jump table entries. No sign extension.
func decodePackedUnsigned(data []byte) uint32 {
	var v uint32
	for i, b := range data {
		v |= uint32(b) << (8 * i)
	}
	return v
}

// sext sign-extends value from length bytes to 64 bits (X_n)
func sext(value uint64, length uint64) uint64 {
	shift := 64 - length*8
	return uint64(int64(value<<shift) >> shift)
}

// immLength clamps a 4-bit length field to the codec's 0..4 byte range
func immLength(l byte) uint64 {
	if l > maxImmLength {
		return maxImmLength
	}
	return uint64(l)
}

// rawReg normalizes a 4-bit register field: indices above 12 clamp to R12,
// so decoded register indices always address the register file
func rawReg(nibble byte) Reg {
	v := nibble & 0x0f
	if v > 12 {
		v = 12
	}
	return Reg(v)
}

func bool2uint64(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
