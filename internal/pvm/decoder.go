package pvm

import "encoding/binary"

// argsShape is the argument skeleton an opcode selects. Exactly one shape is
// valid per opcode; the decoder consumes trailing bytes according to it.
type argsShape int

const (
	shapeNone         argsShape = iota // trap, fallthrough, halt
	shapeImm                           // ecalli
	shapeOffset                        // jump
	shapeRegImmExt                     // load_imm_64
	shapeImm2                          // store_imm_*
	shapeRegImm                        // loads, stores, jump_ind, load_imm
	shapeRegImm2                       // store_imm_ind_*
	shapeRegImmOffset                  // load_imm_jump, branch_*_imm
	shapeReg2                          // move_reg, sbrk, bit ops
	shapeReg2Imm                       // indirect loads/stores, imm arithmetic
	shapeReg2Offset                    // branch_*
	shapeReg2Imm2                      // load_imm_jump_ind
	shapeReg3                          // three-register arithmetic
)

// Instruction one decoded instruction. Produced transiently per step, never
// retained. Register roles by shape: for two-register shapes Regs[0] is the
// first (destination) nibble and Regs[1] the second; for three-register
// shapes Regs[0] and Regs[1] are the operands and Regs[2] the destination.
type Instruction struct {
	Opcode Opcode
	Regs   [3]Reg
	Imm    [2]uint64
	Target uint64 // absolute code offset, offset-carrying shapes only
	Length uint64 // bytes consumed including the opcode byte
}

func shapeOf(op Opcode) (argsShape, bool) {
	switch op {
	case Trap, Fallthrough, Halt:
		return shapeNone, true
	case Ecalli:
		return shapeImm, true
	case Jump:
		return shapeOffset, true
	case LoadImm64:
		return shapeRegImmExt, true
	case StoreImmU8, StoreImmU16, StoreImmU32, StoreImmU64:
		return shapeImm2, true
	case JumpInd, LoadImm, LoadU8, LoadI8, LoadU16, LoadI16, LoadU32, LoadI32, LoadU64,
		StoreU8, StoreU16, StoreU32, StoreU64:
		return shapeRegImm, true
	case StoreImmIndU8, StoreImmIndU16, StoreImmIndU32, StoreImmIndU64:
		return shapeRegImm2, true
	case LoadImmJump, BranchEqImm, BranchNeImm, BranchLtUImm, BranchLeUImm,
		BranchGeUImm, BranchGtUImm, BranchLtSImm, BranchLeSImm, BranchGeSImm, BranchGtSImm:
		return shapeRegImmOffset, true
	case MoveReg, Sbrk, CountSetBits64, CountSetBits32, LeadingZeroBits64, LeadingZeroBits32,
		TrailingZeroBits64, TrailingZeroBits32, SignExtend8, SignExtend16, ZeroExtend16, ReverseBytes:
		return shapeReg2, true
	case StoreIndU8, StoreIndU16, StoreIndU32, StoreIndU64,
		LoadIndU8, LoadIndI8, LoadIndU16, LoadIndI16, LoadIndU32, LoadIndI32, LoadIndU64,
		AddImm32, AndImm, XorImm, OrImm, MulImm32, SetLtUImm, SetLtSImm,
		ShloLImm32, ShloRImm32, SharRImm32, NegAddImm32, SetGtUImm, SetGtSImm,
		ShloLImmAlt32, ShloRImmAlt32, SharRImmAlt32, CmovIzImm, CmovNzImm,
		AddImm64, MulImm64, ShloLImm64, ShloRImm64, SharRImm64, NegAddImm64,
		ShloLImmAlt64, ShloRImmAlt64, SharRImmAlt64,
		RotR64Imm, RotR64ImmAlt, RotR32Imm, RotR32ImmAlt:
		return shapeReg2Imm, true
	case BranchEq, BranchNe, BranchLtU, BranchLtS, BranchGeU, BranchGeS:
		return shapeReg2Offset, true
	case LoadImmJumpInd:
		return shapeReg2Imm2, true
	case Add32, Sub32, Mul32, DivU32, DivS32, RemU32, RemS32, ShloL32, ShloR32, SharR32,
		Add64, Sub64, Mul64, DivU64, DivS64, RemU64, RemS64, ShloL64, ShloR64, SharR64,
		And, Xor, Or, MulUpperSS, MulUpperUU, MulUpperSU, SetLtU, SetLtS, CmovIz, CmovNz,
		RotL64, RotL32, RotR64, RotR32, AndInv, OrInv, Xnor, Max, MaxU, Min, MinU:
		return shapeReg3, true
	}
	return shapeNone, false
}

type argReader struct {
	code []byte
	pos  uint64
}

func (r *argReader) u8() (byte, bool) {
	if r.pos >= uint64(len(r.code)) {
		return 0, false
	}
	b := r.code[r.pos]
	r.pos++
	return b, true
}

// imm reads n bytes as a sign-extended immediate
func (r *argReader) imm(n uint64) (uint64, bool) {
	if r.pos+n > uint64(len(r.code)) {
		return 0, false
	}
	v := decodeImmediate(r.code[r.pos : r.pos+n])
	r.pos += n
	return v, true
}

// ext reads a full 8-byte little-endian immediate
func (r *argReader) ext() (uint64, bool) {
	if r.pos+8 > uint64(len(r.code)) {
		return 0, false
	}
	v := binary.LittleEndian.Uint64(r.code[r.pos : r.pos+8])
	r.pos += 8
	return v, true
}

// Decode decodes the instruction at byte offset pc of the code buffer.
// Purely a function of the bytes at pc; deterministic byte-for-byte.
// Failures are *ErrInvalidOpcode or *ErrTruncatedInstruction; both are
// folded into a trap by the execution engine.
func Decode(code []byte, pc uint64) (Instruction, error) {
	if pc >= uint64(len(code)) {
		return Instruction{}, &ErrTruncatedInstruction{Offset: pc}
	}
	op := Opcode(code[pc])
	shape, ok := shapeOf(op)
	if !ok {
		return Instruction{}, &ErrInvalidOpcode{Opcode: op, Offset: pc}
	}

	inst := Instruction{Opcode: op}
	r := argReader{code: code, pos: pc + 1}
	truncated := func() (Instruction, error) {
		return Instruction{}, &ErrTruncatedInstruction{Opcode: op, Offset: pc}
	}

	switch shape {
	case shapeNone:

	case shapeImm:
		l, ok := r.u8()
		if !ok {
			return truncated()
		}
		imm, ok := r.imm(immLength(l))
		if !ok {
			return truncated()
		}
		inst.Imm[0] = imm

	case shapeOffset:
		l, ok := r.u8()
		if !ok {
			return truncated()
		}
		off, ok := r.imm(immLength(l))
		if !ok {
			return truncated()
		}
		inst.Target = pc + off // offsets are relative to the instruction start

	case shapeRegImmExt:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		imm, ok := r.ext()
		if !ok {
			return truncated()
		}
		inst.Regs[0] = rawReg(b)
		inst.Imm[0] = imm

	case shapeImm2:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		immX, ok := r.imm(immLength(b & 0x0f))
		if !ok {
			return truncated()
		}
		immY, ok := r.imm(immLength(b >> 4))
		if !ok {
			return truncated()
		}
		inst.Imm[0], inst.Imm[1] = immX, immY

	case shapeRegImm:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		imm, ok := r.imm(immLength(b >> 4))
		if !ok {
			return truncated()
		}
		inst.Regs[0] = rawReg(b)
		inst.Imm[0] = imm

	case shapeRegImm2:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		ly, ok := r.u8()
		if !ok {
			return truncated()
		}
		immX, ok := r.imm(immLength(b >> 4))
		if !ok {
			return truncated()
		}
		immY, ok := r.imm(immLength(ly))
		if !ok {
			return truncated()
		}
		inst.Regs[0] = rawReg(b)
		inst.Imm[0], inst.Imm[1] = immX, immY

	case shapeRegImmOffset:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		ly, ok := r.u8()
		if !ok {
			return truncated()
		}
		immX, ok := r.imm(immLength(b >> 4))
		if !ok {
			return truncated()
		}
		off, ok := r.imm(immLength(ly))
		if !ok {
			return truncated()
		}
		inst.Regs[0] = rawReg(b)
		inst.Imm[0] = immX
		inst.Target = pc + off

	case shapeReg2:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		inst.Regs[0], inst.Regs[1] = rawReg(b), rawReg(b>>4)

	case shapeReg2Imm:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		l, ok := r.u8()
		if !ok {
			return truncated()
		}
		imm, ok := r.imm(immLength(l))
		if !ok {
			return truncated()
		}
		inst.Regs[0], inst.Regs[1] = rawReg(b), rawReg(b>>4)
		inst.Imm[0] = imm

	case shapeReg2Offset:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		l, ok := r.u8()
		if !ok {
			return truncated()
		}
		off, ok := r.imm(immLength(l))
		if !ok {
			return truncated()
		}
		inst.Regs[0], inst.Regs[1] = rawReg(b), rawReg(b>>4)
		inst.Target = pc + off

	case shapeReg2Imm2:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		ls, ok := r.u8()
		if !ok {
			return truncated()
		}
		immX, ok := r.imm(immLength(ls & 0x0f))
		if !ok {
			return truncated()
		}
		immY, ok := r.imm(immLength(ls >> 4))
		if !ok {
			return truncated()
		}
		inst.Regs[0], inst.Regs[1] = rawReg(b), rawReg(b>>4)
		inst.Imm[0], inst.Imm[1] = immX, immY

	case shapeReg3:
		b, ok := r.u8()
		if !ok {
			return truncated()
		}
		d, ok := r.u8()
		if !ok {
			return truncated()
		}
		inst.Regs[0], inst.Regs[1], inst.Regs[2] = rawReg(b), rawReg(b>>4), rawReg(d)
	}

	inst.Length = r.pos - pc
	return inst, nil
}
