package pvm

import "fmt"

type Opcode byte

func (o Opcode) String() string {
	if name, ok := mnemonics[o]; ok {
		return name
	}
	return fmt.Sprintf("invalid(%d)", byte(o))
}

// Gas cost per operation (ϱ∆)
const (
	TrapCost                            Gas = 1
	FallthroughCost                     Gas = 1
	HaltCost                            Gas = 1
	EcalliCost                          Gas = 1
	StoreImmU8Cost                      Gas = 1
	StoreImmU16Cost                     Gas = 1
	StoreImmU32Cost                     Gas = 1
	StoreImmU64Cost                     Gas = 1
	JumpCost                            Gas = 1
	JumpIndirectCost                    Gas = 1
	LoadImmCost                         Gas = 1
	LoadU8Cost                          Gas = 1
	LoadI8Cost                          Gas = 1
	LoadU16Cost                         Gas = 1
	LoadI16Cost                         Gas = 1
	LoadImm64Cost                       Gas = 1
	LoadU32Cost                         Gas = 1
	LoadI32Cost                         Gas = 1
	LoadU64Cost                         Gas = 1
	StoreU8Cost                         Gas = 1
	StoreU16Cost                        Gas = 1
	StoreU32Cost                        Gas = 1
	StoreU64Cost                        Gas = 1
	StoreImmIndirectU8Cost              Gas = 1
	StoreImmIndirectU16Cost             Gas = 1
	StoreImmIndirectU32Cost             Gas = 1
	StoreImmIndirectU64Cost             Gas = 1
	LoadImmAndJumpCost                  Gas = 1
	BranchEqImmCost                     Gas = 1
	BranchNotEqImmCost                  Gas = 1
	BranchLessUnsignedImmCost           Gas = 1
	BranchLessOrEqualUnsignedImmCost    Gas = 1
	BranchGreaterOrEqualUnsignedImmCost Gas = 1
	BranchGreaterUnsignedImmCost        Gas = 1
	BranchLessSignedImmCost             Gas = 1
	BranchLessOrEqualSignedImmCost      Gas = 1
	BranchGreaterOrEqualSignedImmCost   Gas = 1
	BranchGreaterSignedImmCost          Gas = 1
	MoveRegCost                         Gas = 1
	SbrkCost                            Gas = 1
	CountSetBits64Cost                  Gas = 1
	CountSetBits32Cost                  Gas = 1
	LeadingZeroBits64Cost               Gas = 1
	LeadingZeroBits32Cost               Gas = 1
	TrailingZeroBits64Cost              Gas = 1
	TrailingZeroBits32Cost              Gas = 1
	SignExtend8Cost                     Gas = 1
	SignExtend16Cost                    Gas = 1
	ZeroExtend16Cost                    Gas = 1
	ReverseBytesCost                    Gas = 1
	StoreIndirectU8Cost                 Gas = 1
	StoreIndirectU16Cost                Gas = 1
	StoreIndirectU32Cost                Gas = 1
	StoreIndirectU64Cost                Gas = 1
	LoadIndirectU8Cost                  Gas = 1
	LoadIndirectI8Cost                  Gas = 1
	LoadIndirectU16Cost                 Gas = 1
	LoadIndirectI16Cost                 Gas = 1
	LoadIndirectU32Cost                 Gas = 1
	LoadIndirectI32Cost                 Gas = 1
	LoadIndirectU64Cost                 Gas = 1
	AddImm32Cost                        Gas = 1
	AndImmCost                          Gas = 1
	XorImmCost                          Gas = 1
	OrImmCost                           Gas = 1
	MulImm32Cost                        Gas = 1
	SetLessThanUnsignedImmCost          Gas = 1
	SetLessThanSignedImmCost            Gas = 1
	ShiftLogicalLeftImm32Cost           Gas = 1
	ShiftLogicalRightImm32Cost          Gas = 1
	ShiftArithmeticRightImm32Cost       Gas = 1
	NegateAndAddImm32Cost               Gas = 1
	SetGreaterThanUnsignedImmCost       Gas = 1
	SetGreaterThanSignedImmCost         Gas = 1
	ShiftLogicalLeftImmAlt32Cost        Gas = 1
	ShiftLogicalRightImmAlt32Cost       Gas = 1
	ShiftArithmeticRightImmAlt32Cost    Gas = 1
	CmovIfZeroImmCost                   Gas = 1
	CmovIfNotZeroImmCost                Gas = 1
	AddImm64Cost                        Gas = 1
	MulImm64Cost                        Gas = 1
	ShiftLogicalLeftImm64Cost           Gas = 1
	ShiftLogicalRightImm64Cost          Gas = 1
	ShiftArithmeticRightImm64Cost       Gas = 1
	NegateAndAddImm64Cost               Gas = 1
	ShiftLogicalLeftImmAlt64Cost        Gas = 1
	ShiftLogicalRightImmAlt64Cost       Gas = 1
	ShiftArithmeticRightImmAlt64Cost    Gas = 1
	RotR64ImmCost                       Gas = 1
	RotR64ImmAltCost                    Gas = 1
	RotR32ImmCost                       Gas = 1
	RotR32ImmAltCost                    Gas = 1
	BranchEqCost                        Gas = 1
	BranchNotEqCost                     Gas = 1
	BranchLessUnsignedCost              Gas = 1
	BranchLessSignedCost                Gas = 1
	BranchGreaterOrEqualUnsignedCost    Gas = 1
	BranchGreaterOrEqualSignedCost      Gas = 1
	LoadImmAndJumpIndirectCost          Gas = 1
	Add32Cost                           Gas = 1
	Sub32Cost                           Gas = 1
	Mul32Cost                           Gas = 1
	DivUnsigned32Cost                   Gas = 1
	DivSigned32Cost                     Gas = 1
	RemUnsigned32Cost                   Gas = 1
	RemSigned32Cost                     Gas = 1
	ShiftLogicalLeft32Cost              Gas = 1
	ShiftLogicalRight32Cost             Gas = 1
	ShiftArithmeticRight32Cost          Gas = 1
	Add64Cost                           Gas = 1
	Sub64Cost                           Gas = 1
	Mul64Cost                           Gas = 1
	DivUnsigned64Cost                   Gas = 1
	DivSigned64Cost                     Gas = 1
	RemUnsigned64Cost                   Gas = 1
	RemSigned64Cost                     Gas = 1
	ShiftLogicalLeft64Cost              Gas = 1
	ShiftLogicalRight64Cost             Gas = 1
	ShiftArithmeticRight64Cost          Gas = 1
	AndCost                             Gas = 1
	XorCost                             Gas = 1
	OrCost                              Gas = 1
	MulUpperSignedSignedCost            Gas = 1
	MulUpperUnsignedUnsignedCost        Gas = 1
	MulUpperSignedUnsignedCost          Gas = 1
	SetLessThanUnsignedCost             Gas = 1
	SetLessThanSignedCost               Gas = 1
	CmovIfZeroCost                      Gas = 1
	CmovIfNotZeroCost                   Gas = 1
	RotL64Cost                          Gas = 1
	RotL32Cost                          Gas = 1
	RotR64Cost                          Gas = 1
	RotR32Cost                          Gas = 1
	AndInvCost                          Gas = 1
	OrInvCost                           Gas = 1
	XnorCost                            Gas = 1
	MaxCost                             Gas = 1
	MaxUCost                            Gas = 1
	MinCost                             Gas = 1
	MinUCost                            Gas = 1
)

type Reg byte

func (r Reg) String() string {
	if r > R12 {
		return "UNKNOWN"
	}
	return fmt.Sprintf("r%d", byte(r))
}

const (
	R0  Reg = 0
	R1  Reg = 1
	R2  Reg = 2
	R3  Reg = 3
	R4  Reg = 4
	R5  Reg = 5
	R6  Reg = 6
	R7  Reg = 7
	R8  Reg = 8
	R9  Reg = 9
	R10 Reg = 10
	R11 Reg = 11
	R12 Reg = 12
)
