package pvm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstance() *Instance {
	return &Instance{
		jumpTable:    &JumpTable{},
		gasLimit:     1000,
		gasRemaining: 1000,
	}
}

func TestRegisterMutations(t *testing.T) {
	tests := []struct {
		name string
		regs Registers
		op   func(*Instance)
		dst  Reg
		want uint64
	}{
		{
			name: "add_64 wraps",
			regs: Registers{R1: math.MaxUint64, R2: 2},
			op:   func(i *Instance) { i.Add64(R3, R1, R2) },
			dst:  R3, want: 1,
		},
		{
			name: "sub_64 wraps below zero",
			regs: Registers{R1: 42, R2: 1000},
			op:   func(i *Instance) { i.Sub64(R3, R1, R2) },
			dst:  R3, want: 0xFFFFFFFFFFFFFC46,
		},
		{
			name: "add_32 sign extends the result",
			regs: Registers{R1: 0x7FFFFFFF, R2: 1},
			op:   func(i *Instance) { i.Add32(R3, R1, R2) },
			dst:  R3, want: 0xFFFFFFFF80000000,
		},
		{
			name: "add_32 ignores upper operand bits",
			regs: Registers{R1: 0xAAAAAAAA00000001, R2: 1},
			op:   func(i *Instance) { i.Add32(R3, R1, R2) },
			dst:  R3, want: 2,
		},
		{
			name: "mul_32 truncates then sign extends",
			regs: Registers{R1: 0x10000, R2: 0x10000},
			op:   func(i *Instance) { i.Mul32(R3, R1, R2) },
			dst:  R3, want: 0,
		},
		{
			name: "div_u_64 by zero yields all ones",
			regs: Registers{R1: 10, R2: 0},
			op:   func(i *Instance) { i.DivU64(R3, R1, R2) },
			dst:  R3, want: math.MaxUint64,
		},
		{
			name: "div_s_64 overflow keeps the dividend",
			regs: Registers{R1: 1 << 63, R2: math.MaxUint64},
			op:   func(i *Instance) { i.DivS64(R3, R1, R2) },
			dst:  R3, want: 1 << 63,
		},
		{
			name: "div_s_64 rounds towards zero",
			regs: Registers{R1: ^uint64(6), R2: 2},
			op:   func(i *Instance) { i.DivS64(R3, R1, R2) },
			dst:  R3, want: ^uint64(2),
		},
		{
			name: "rem_u_64 by zero keeps the dividend",
			regs: Registers{R1: 10, R2: 0},
			op:   func(i *Instance) { i.RemU64(R3, R1, R2) },
			dst:  R3, want: 10,
		},
		{
			name: "rem_s_64 overflow is zero",
			regs: Registers{R1: 1 << 63, R2: math.MaxUint64},
			op:   func(i *Instance) { i.RemS64(R3, R1, R2) },
			dst:  R3, want: 0,
		},
		{
			name: "rem_s_64 takes the sign of the dividend",
			regs: Registers{R1: ^uint64(6), R2: 3},
			op:   func(i *Instance) { i.RemS64(R3, R1, R2) },
			dst:  R3, want: ^uint64(0),
		},
		{
			name: "div_s_32 overflow keeps the dividend",
			regs: Registers{R1: 0x80000000, R2: 0xFFFFFFFF},
			op:   func(i *Instance) { i.DivS32(R3, R1, R2) },
			dst:  R3, want: 0xFFFFFFFF80000000,
		},
		{
			name: "div_u_32 by zero yields all ones",
			regs: Registers{R1: 7, R2: 0},
			op:   func(i *Instance) { i.DivU32(R3, R1, R2) },
			dst:  R3, want: math.MaxUint64,
		},
		{
			name: "mul_upper_u_u",
			regs: Registers{R1: math.MaxUint64, R2: math.MaxUint64},
			op:   func(i *Instance) { i.MulUpperUU(R3, R1, R2) },
			dst:  R3, want: 0xFFFFFFFFFFFFFFFE,
		},
		{
			name: "mul_upper_s_s minus one squared",
			regs: Registers{R1: math.MaxUint64, R2: math.MaxUint64},
			op:   func(i *Instance) { i.MulUpperSS(R3, R1, R2) },
			dst:  R3, want: 0,
		},
		{
			name: "mul_upper_s_s negative by positive",
			regs: Registers{R1: math.MaxUint64, R2: 2},
			op:   func(i *Instance) { i.MulUpperSS(R3, R1, R2) },
			dst:  R3, want: math.MaxUint64,
		},
		{
			name: "mul_upper_s_u negative by max unsigned",
			regs: Registers{R1: math.MaxUint64, R2: math.MaxUint64},
			op:   func(i *Instance) { i.MulUpperSU(R3, R1, R2) },
			dst:  R3, want: math.MaxUint64,
		},
		{
			name: "shlo_l_64 shift amount is modulo 64",
			regs: Registers{R1: 1, R2: 65},
			op:   func(i *Instance) { i.ShloL64(R3, R1, R2) },
			dst:  R3, want: 2,
		},
		{
			name: "shlo_l_32 sign extends",
			regs: Registers{R1: 1, R2: 31},
			op:   func(i *Instance) { i.ShloL32(R3, R1, R2) },
			dst:  R3, want: 0xFFFFFFFF80000000,
		},
		{
			name: "shar_r_64 keeps the sign",
			regs: Registers{R1: ^uint64(7), R2: 2},
			op:   func(i *Instance) { i.SharR64(R3, R1, R2) },
			dst:  R3, want: ^uint64(1),
		},
		{
			name: "shar_r_32 operates on the low word",
			regs: Registers{R1: 0x80000000, R2: 4},
			op:   func(i *Instance) { i.SharR32(R3, R1, R2) },
			dst:  R3, want: 0xFFFFFFFFF8000000,
		},
		{
			name: "rot_r_64",
			regs: Registers{R1: 1, R2: 1},
			op:   func(i *Instance) { i.RotateRight64(R3, R1, R2) },
			dst:  R3, want: 1 << 63,
		},
		{
			name: "rot_l_32 sign extends the rotated word",
			regs: Registers{R1: 0x40000000, R2: 1},
			op:   func(i *Instance) { i.RotateLeft32(R3, R1, R2) },
			dst:  R3, want: 0xFFFFFFFF80000000,
		},
		{
			name: "and_inv",
			regs: Registers{R1: 0b1111, R2: 0b0101},
			op:   func(i *Instance) { i.AndInverted(R3, R1, R2) },
			dst:  R3, want: 0b1010,
		},
		{
			name: "xnor",
			regs: Registers{R1: 0, R2: 0},
			op:   func(i *Instance) { i.Xnor(R3, R1, R2) },
			dst:  R3, want: math.MaxUint64,
		},
		{
			name: "max is signed",
			regs: Registers{R1: math.MaxUint64, R2: 1},
			op:   func(i *Instance) { i.Max(R3, R1, R2) },
			dst:  R3, want: 1,
		},
		{
			name: "max_u is unsigned",
			regs: Registers{R1: math.MaxUint64, R2: 1},
			op:   func(i *Instance) { i.MaxUnsigned(R3, R1, R2) },
			dst:  R3, want: math.MaxUint64,
		},
		{
			name: "min is signed",
			regs: Registers{R1: math.MaxUint64, R2: 1},
			op:   func(i *Instance) { i.Min(R3, R1, R2) },
			dst:  R3, want: math.MaxUint64,
		},
		{
			name: "min_u is unsigned",
			regs: Registers{R1: math.MaxUint64, R2: 1},
			op:   func(i *Instance) { i.MinUnsigned(R3, R1, R2) },
			dst:  R3, want: 1,
		},
		{
			name: "set_lt_s treats operands as signed",
			regs: Registers{R1: math.MaxUint64, R2: 0},
			op:   func(i *Instance) { i.SetLtS(R3, R1, R2) },
			dst:  R3, want: 1,
		},
		{
			name: "set_lt_u treats operands as unsigned",
			regs: Registers{R1: math.MaxUint64, R2: 0},
			op:   func(i *Instance) { i.SetLtU(R3, R1, R2) },
			dst:  R3, want: 0,
		},
		{
			name: "cmov_iz moves on zero condition",
			regs: Registers{R1: 7, R2: 0, R3: 99},
			op:   func(i *Instance) { i.CmovIz(R3, R1, R2) },
			dst:  R3, want: 7,
		},
		{
			name: "cmov_iz keeps destination on nonzero condition",
			regs: Registers{R1: 7, R2: 5, R3: 99},
			op:   func(i *Instance) { i.CmovIz(R3, R1, R2) },
			dst:  R3, want: 99,
		},
		{
			name: "cmov_nz moves on nonzero condition",
			regs: Registers{R1: 7, R2: 5, R3: 99},
			op:   func(i *Instance) { i.CmovNz(R3, R1, R2) },
			dst:  R3, want: 7,
		},
		{
			name: "sign_extend_8",
			regs: Registers{R1: 0x1FF},
			op:   func(i *Instance) { i.SignExtend8(R3, R1) },
			dst:  R3, want: math.MaxUint64,
		},
		{
			name: "sign_extend_16",
			regs: Registers{R1: 0x8000},
			op:   func(i *Instance) { i.SignExtend16(R3, R1) },
			dst:  R3, want: 0xFFFFFFFFFFFF8000,
		},
		{
			name: "zero_extend_16",
			regs: Registers{R1: 0x12345678},
			op:   func(i *Instance) { i.ZeroExtend16(R3, R1) },
			dst:  R3, want: 0x5678,
		},
		{
			name: "reverse_bytes",
			regs: Registers{R1: 0x0102030405060708},
			op:   func(i *Instance) { i.ReverseBytes(R3, R1) },
			dst:  R3, want: 0x0807060504030201,
		},
		{
			name: "count_set_bits_64",
			regs: Registers{R1: 0xF0F0},
			op:   func(i *Instance) { i.CountSetBits64(R3, R1) },
			dst:  R3, want: 8,
		},
		{
			name: "count_set_bits_32 ignores the high word",
			regs: Registers{R1: 0xFFFFFFFF00000003},
			op:   func(i *Instance) { i.CountSetBits32(R3, R1) },
			dst:  R3, want: 2,
		},
		{
			name: "leading_zero_bits_64",
			regs: Registers{R1: 1},
			op:   func(i *Instance) { i.LeadingZeroBits64(R3, R1) },
			dst:  R3, want: 63,
		},
		{
			name: "trailing_zero_bits_32 of zero",
			regs: Registers{R1: 0xFFFFFFFF00000000},
			op:   func(i *Instance) { i.TrailingZeroBits32(R3, R1) },
			dst:  R3, want: 32,
		},
		{
			name: "neg_add_imm_64",
			regs: Registers{R1: 3},
			op:   func(i *Instance) { i.NegAddImm64(R3, R1, 10) },
			dst:  R3, want: 7,
		},
		{
			name: "shlo_l_imm_32 masks the shift amount",
			regs: Registers{R1: 1},
			op:   func(i *Instance) { i.ShloLImm32(R3, R1, 33) },
			dst:  R3, want: 2,
		},
		{
			name: "shar_r_imm_64 keeps the sign",
			regs: Registers{R1: ^uint64(15)},
			op:   func(i *Instance) { i.SharRImm64(R3, R1, 2) },
			dst:  R3, want: ^uint64(3),
		},
		{
			name: "shlo_l_imm_alt_64 shifts the immediate by the register",
			regs: Registers{R1: 3},
			op:   func(i *Instance) { i.ShloLImmAlt64(R3, R1, 2) },
			dst:  R3, want: 16,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instance := newTestInstance()
			instance.regs = tt.regs
			tt.op(instance)
			assert.Equal(t, tt.want, instance.regs[tt.dst])
		})
	}
}

func TestMutationsAdvanceTheCounter(t *testing.T) {
	instance := newTestInstance()
	instance.instructionLength = 3
	instance.LoadImm(R1, 5)
	assert.Equal(t, uint64(3), instance.instructionCounter)
	instance.Add64(R2, R1, R1)
	assert.Equal(t, uint64(6), instance.instructionCounter)
}

func TestBranchMovesOrAdvances(t *testing.T) {
	instance := newTestInstance()
	instance.instructionLength = 4
	instance.regs[R1] = 1

	require.NoError(t, instance.BranchEqImm(R1, 1, 40))
	assert.Equal(t, uint64(40), instance.instructionCounter)

	require.NoError(t, instance.BranchEqImm(R1, 2, 80))
	assert.Equal(t, uint64(44), instance.instructionCounter)
}

func TestLoadImmJumpSetsRegisterBeforeJumping(t *testing.T) {
	instance := newTestInstance()
	require.NoError(t, instance.LoadImmJump(R1, 42, 20))
	assert.Equal(t, uint64(42), instance.regs[R1])
	assert.Equal(t, uint64(20), instance.instructionCounter)
}

func TestMemoryMutations(t *testing.T) {
	mem, err := InitializeMemory(nil, nil, nil, 4096, 1)
	require.NoError(t, err)
	base := uint64(2 * MemoryZoneSize)

	instance := newTestInstance()
	instance.memory = mem

	require.NoError(t, instance.StoreImmU32(base, 0xCAFEBABE))
	require.NoError(t, instance.LoadU32(R1, base))
	assert.Equal(t, uint64(0xCAFEBABE), instance.regs[R1])
	require.NoError(t, instance.LoadI32(R2, base))
	assert.Equal(t, uint64(0xFFFFFFFFCAFEBABE), instance.regs[R2])

	// indirect addressing offsets the base register
	instance.regs[R3] = base
	require.NoError(t, instance.StoreImmIndU16(R3, 8, 0xBEEF))
	require.NoError(t, instance.LoadIndU16(R4, R3, 8))
	assert.Equal(t, uint64(0xBEEF), instance.regs[R4])
	require.NoError(t, instance.LoadIndI8(R5, R3, 9))
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFBE), instance.regs[R5])

	// a faulting store leaves the counter in place
	before := instance.instructionCounter
	err = instance.StoreImmU8(16, 1)
	require.Error(t, err)
	assert.Equal(t, before, instance.instructionCounter)
}
