package pvm

import "encoding/binary"

// Hand assembler for building test programs. Each helper returns the encoded
// bytes of one instruction; prog concatenates them into a code buffer.

func immBytes(v uint64, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

func prog(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func asmNone(op Opcode) []byte {
	return []byte{byte(op)}
}

func asmImm(op Opcode, imm uint64, n int) []byte {
	return prog([]byte{byte(op), byte(n)}, immBytes(imm, n))
}

func asmOffset(op Opcode, off int64, n int) []byte {
	return prog([]byte{byte(op), byte(n)}, immBytes(uint64(off), n))
}

func asmRegImmExt(op Opcode, reg Reg, imm uint64) []byte {
	out := []byte{byte(op), byte(reg)}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], imm)
	return append(out, buf[:]...)
}

func asmImm2(op Opcode, immX uint64, nx int, immY uint64, ny int) []byte {
	return prog([]byte{byte(op), byte(nx) | byte(ny)<<4}, immBytes(immX, nx), immBytes(immY, ny))
}

func asmRegImm(op Opcode, reg Reg, imm uint64, n int) []byte {
	return prog([]byte{byte(op), byte(reg) | byte(n)<<4}, immBytes(imm, n))
}

func asmRegImm2(op Opcode, reg Reg, immX uint64, nx int, immY uint64, ny int) []byte {
	return prog([]byte{byte(op), byte(reg) | byte(nx)<<4, byte(ny)}, immBytes(immX, nx), immBytes(immY, ny))
}

func asmRegImmOffset(op Opcode, reg Reg, imm uint64, n int, off int64, noff int) []byte {
	return prog([]byte{byte(op), byte(reg) | byte(n)<<4, byte(noff)}, immBytes(imm, n), immBytes(uint64(off), noff))
}

func asmReg2(op Opcode, a, b Reg) []byte {
	return []byte{byte(op), byte(a) | byte(b)<<4}
}

func asmReg2Imm(op Opcode, a, b Reg, imm uint64, n int) []byte {
	return prog([]byte{byte(op), byte(a) | byte(b)<<4, byte(n)}, immBytes(imm, n))
}

func asmReg2Offset(op Opcode, a, b Reg, off int64, n int) []byte {
	return prog([]byte{byte(op), byte(a) | byte(b)<<4, byte(n)}, immBytes(uint64(off), n))
}

func asmReg2Imm2(op Opcode, a, b Reg, immX uint64, nx int, immY uint64, ny int) []byte {
	return prog([]byte{byte(op), byte(a) | byte(b)<<4, byte(nx) | byte(ny)<<4}, immBytes(immX, nx), immBytes(immY, ny))
}

func asmReg3(op Opcode, a, b, d Reg) []byte {
	return []byte{byte(op), byte(a) | byte(b)<<4, byte(d)}
}

// container assembles a program container around the given sections
func container(ro, rw []byte, heapPages uint16, stackSize uint32, code, jumpTable []byte) []byte {
	out := prog(
		immBytes(uint64(len(ro)), 3),
		immBytes(uint64(len(rw)), 3),
		immBytes(uint64(heapPages), 2),
		immBytes(uint64(stackSize), 3),
		ro, rw,
		immBytes(uint64(len(code)), 4),
		code,
		jumpTable,
	)
	return out
}

// jumpTableBytes packs entries at the given item width, prefixed with the
// width byte
func jumpTableBytes(itemWidth byte, entries ...uint32) []byte {
	out := []byte{itemWidth}
	for _, e := range entries {
		out = append(out, immBytes(uint64(e), int(itemWidth))...)
	}
	return out
}
