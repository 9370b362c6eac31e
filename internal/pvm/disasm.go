package pvm

import "fmt"

var mnemonics = map[Opcode]string{
	Trap:        "trap",
	Fallthrough: "fallthrough",
	Halt:        "halt",
	Ecalli:      "ecalli",
	LoadImm64:   "load_imm_64",

	StoreImmU8:  "store_imm_u8",
	StoreImmU16: "store_imm_u16",
	StoreImmU32: "store_imm_u32",
	StoreImmU64: "store_imm_u64",

	Jump: "jump",

	JumpInd:  "jump_ind",
	LoadImm:  "load_imm",
	LoadU8:   "load_u8",
	LoadI8:   "load_i8",
	LoadU16:  "load_u16",
	LoadI16:  "load_i16",
	LoadU32:  "load_u32",
	LoadI32:  "load_i32",
	LoadU64:  "load_u64",
	StoreU8:  "store_u8",
	StoreU16: "store_u16",
	StoreU32: "store_u32",
	StoreU64: "store_u64",

	StoreImmIndU8:  "store_imm_ind_u8",
	StoreImmIndU16: "store_imm_ind_u16",
	StoreImmIndU32: "store_imm_ind_u32",
	StoreImmIndU64: "store_imm_ind_u64",

	LoadImmJump:  "load_imm_jump",
	BranchEqImm:  "branch_eq_imm",
	BranchNeImm:  "branch_ne_imm",
	BranchLtUImm: "branch_lt_u_imm",
	BranchLeUImm: "branch_le_u_imm",
	BranchGeUImm: "branch_ge_u_imm",
	BranchGtUImm: "branch_gt_u_imm",
	BranchLtSImm: "branch_lt_s_imm",
	BranchLeSImm: "branch_le_s_imm",
	BranchGeSImm: "branch_ge_s_imm",
	BranchGtSImm: "branch_gt_s_imm",

	MoveReg:            "move_reg",
	CountSetBits64:     "count_set_bits_64",
	CountSetBits32:     "count_set_bits_32",
	LeadingZeroBits64:  "leading_zero_bits_64",
	LeadingZeroBits32:  "leading_zero_bits_32",
	TrailingZeroBits64: "trailing_zero_bits_64",
	TrailingZeroBits32: "trailing_zero_bits_32",
	SignExtend8:        "sign_extend_8",
	SignExtend16:       "sign_extend_16",
	ZeroExtend16:       "zero_extend_16",
	ReverseBytes:       "reverse_bytes",
	Sbrk:               "sbrk",

	StoreIndU8:    "store_ind_u8",
	StoreIndU16:   "store_ind_u16",
	StoreIndU32:   "store_ind_u32",
	StoreIndU64:   "store_ind_u64",
	LoadIndU8:     "load_ind_u8",
	LoadIndI8:     "load_ind_i8",
	LoadIndU16:    "load_ind_u16",
	LoadIndI16:    "load_ind_i16",
	LoadIndU32:    "load_ind_u32",
	LoadIndI32:    "load_ind_i32",
	LoadIndU64:    "load_ind_u64",
	AddImm32:      "add_imm_32",
	AndImm:        "and_imm",
	XorImm:        "xor_imm",
	OrImm:         "or_imm",
	MulImm32:      "mul_imm_32",
	SetLtUImm:     "set_lt_u_imm",
	SetLtSImm:     "set_lt_s_imm",
	ShloLImm32:    "shlo_l_imm_32",
	ShloRImm32:    "shlo_r_imm_32",
	SharRImm32:    "shar_r_imm_32",
	NegAddImm32:   "neg_add_imm_32",
	SetGtUImm:     "set_gt_u_imm",
	SetGtSImm:     "set_gt_s_imm",
	ShloLImmAlt32: "shlo_l_imm_alt_32",
	ShloRImmAlt32: "shlo_r_imm_alt_32",
	SharRImmAlt32: "shar_r_imm_alt_32",
	CmovIzImm:     "cmov_iz_imm",
	CmovNzImm:     "cmov_nz_imm",
	AddImm64:      "add_imm_64",
	MulImm64:      "mul_imm_64",
	ShloLImm64:    "shlo_l_imm_64",
	ShloRImm64:    "shlo_r_imm_64",
	SharRImm64:    "shar_r_imm_64",
	NegAddImm64:   "neg_add_imm_64",
	ShloLImmAlt64: "shlo_l_imm_alt_64",
	ShloRImmAlt64: "shlo_r_imm_alt_64",
	SharRImmAlt64: "shar_r_imm_alt_64",
	RotR64Imm:     "rot_r_64_imm",
	RotR64ImmAlt:  "rot_r_64_imm_alt",
	RotR32Imm:     "rot_r_32_imm",
	RotR32ImmAlt:  "rot_r_32_imm_alt",

	BranchEq:  "branch_eq",
	BranchNe:  "branch_ne",
	BranchLtU: "branch_lt_u",
	BranchLtS: "branch_lt_s",
	BranchGeU: "branch_ge_u",
	BranchGeS: "branch_ge_s",

	LoadImmJumpInd: "load_imm_jump_ind",

	Add32:      "add_32",
	Sub32:      "sub_32",
	Mul32:      "mul_32",
	DivU32:     "div_u_32",
	DivS32:     "div_s_32",
	RemU32:     "rem_u_32",
	RemS32:     "rem_s_32",
	ShloL32:    "shlo_l_32",
	ShloR32:    "shlo_r_32",
	SharR32:    "shar_r_32",
	Add64:      "add_64",
	Sub64:      "sub_64",
	Mul64:      "mul_64",
	DivU64:     "div_u_64",
	DivS64:     "div_s_64",
	RemU64:     "rem_u_64",
	RemS64:     "rem_s_64",
	ShloL64:    "shlo_l_64",
	ShloR64:    "shlo_r_64",
	SharR64:    "shar_r_64",
	And:        "and",
	Xor:        "xor",
	Or:         "or",
	MulUpperSS: "mul_upper_s_s",
	MulUpperUU: "mul_upper_u_u",
	MulUpperSU: "mul_upper_s_u",
	SetLtU:     "set_lt_u",
	SetLtS:     "set_lt_s",
	CmovIz:     "cmov_iz",
	CmovNz:     "cmov_nz",
	RotL64:     "rot_l_64",
	RotL32:     "rot_l_32",
	RotR64:     "rot_r_64",
	RotR32:     "rot_r_32",
	AndInv:     "and_inv",
	OrInv:      "or_inv",
	Xnor:       "xnor",
	Max:        "max",
	MaxU:       "max_u",
	Min:        "min",
	MinU:       "min_u",
}

// RenderInstruction the textual form of one decoded instruction: the
// mnemonic followed by operands per argument shape, e.g. "load_imm r1, 0x2a"
// or "branch_eq r1, r2, 14". Diagnostic only, never read back.
func RenderInstruction(inst Instruction) string {
	name := inst.Opcode.String()
	shape, ok := shapeOf(inst.Opcode)
	if !ok {
		return name
	}
	switch shape {
	case shapeNone:
		return name
	case shapeImm:
		return fmt.Sprintf("%s 0x%x", name, inst.Imm[0])
	case shapeOffset:
		return fmt.Sprintf("%s %d", name, inst.Target)
	case shapeRegImmExt, shapeRegImm:
		return fmt.Sprintf("%s %s, 0x%x", name, inst.Regs[0], inst.Imm[0])
	case shapeImm2:
		return fmt.Sprintf("%s 0x%x, 0x%x", name, inst.Imm[0], inst.Imm[1])
	case shapeRegImm2:
		return fmt.Sprintf("%s %s, 0x%x, 0x%x", name, inst.Regs[0], inst.Imm[0], inst.Imm[1])
	case shapeRegImmOffset:
		return fmt.Sprintf("%s %s, 0x%x, %d", name, inst.Regs[0], inst.Imm[0], inst.Target)
	case shapeReg2:
		return fmt.Sprintf("%s %s, %s", name, inst.Regs[0], inst.Regs[1])
	case shapeReg2Imm:
		return fmt.Sprintf("%s %s, %s, 0x%x", name, inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case shapeReg2Offset:
		return fmt.Sprintf("%s %s, %s, %d", name, inst.Regs[0], inst.Regs[1], inst.Target)
	case shapeReg2Imm2:
		return fmt.Sprintf("%s %s, %s, 0x%x, 0x%x", name, inst.Regs[0], inst.Regs[1], inst.Imm[0], inst.Imm[1])
	case shapeReg3:
		return fmt.Sprintf("%s %s, %s, %s", name, inst.Regs[2], inst.Regs[0], inst.Regs[1])
	}
	return name
}
