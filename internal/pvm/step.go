package pvm

// instructionCost the fixed gas charge for one instruction (ϱ∆ lookup)
func instructionCost(op Opcode) Gas {
	switch op {
	case Trap:
		return TrapCost
	case Fallthrough:
		return FallthroughCost
	case Halt:
		return HaltCost
	case Ecalli:
		return EcalliCost
	case LoadImm64:
		return LoadImm64Cost
	case StoreImmU8:
		return StoreImmU8Cost
	case StoreImmU16:
		return StoreImmU16Cost
	case StoreImmU32:
		return StoreImmU32Cost
	case StoreImmU64:
		return StoreImmU64Cost
	case Jump:
		return JumpCost
	case JumpInd:
		return JumpIndirectCost
	case LoadImm:
		return LoadImmCost
	case LoadU8:
		return LoadU8Cost
	case LoadI8:
		return LoadI8Cost
	case LoadU16:
		return LoadU16Cost
	case LoadI16:
		return LoadI16Cost
	case LoadU32:
		return LoadU32Cost
	case LoadI32:
		return LoadI32Cost
	case LoadU64:
		return LoadU64Cost
	case StoreU8:
		return StoreU8Cost
	case StoreU16:
		return StoreU16Cost
	case StoreU32:
		return StoreU32Cost
	case StoreU64:
		return StoreU64Cost
	case StoreImmIndU8:
		return StoreImmIndirectU8Cost
	case StoreImmIndU16:
		return StoreImmIndirectU16Cost
	case StoreImmIndU32:
		return StoreImmIndirectU32Cost
	case StoreImmIndU64:
		return StoreImmIndirectU64Cost
	case LoadImmJump:
		return LoadImmAndJumpCost
	case BranchEqImm:
		return BranchEqImmCost
	case BranchNeImm:
		return BranchNotEqImmCost
	case BranchLtUImm:
		return BranchLessUnsignedImmCost
	case BranchLeUImm:
		return BranchLessOrEqualUnsignedImmCost
	case BranchGeUImm:
		return BranchGreaterOrEqualUnsignedImmCost
	case BranchGtUImm:
		return BranchGreaterUnsignedImmCost
	case BranchLtSImm:
		return BranchLessSignedImmCost
	case BranchLeSImm:
		return BranchLessOrEqualSignedImmCost
	case BranchGeSImm:
		return BranchGreaterOrEqualSignedImmCost
	case BranchGtSImm:
		return BranchGreaterSignedImmCost
	case MoveReg:
		return MoveRegCost
	case Sbrk:
		return SbrkCost
	case CountSetBits64:
		return CountSetBits64Cost
	case CountSetBits32:
		return CountSetBits32Cost
	case LeadingZeroBits64:
		return LeadingZeroBits64Cost
	case LeadingZeroBits32:
		return LeadingZeroBits32Cost
	case TrailingZeroBits64:
		return TrailingZeroBits64Cost
	case TrailingZeroBits32:
		return TrailingZeroBits32Cost
	case SignExtend8:
		return SignExtend8Cost
	case SignExtend16:
		return SignExtend16Cost
	case ZeroExtend16:
		return ZeroExtend16Cost
	case ReverseBytes:
		return ReverseBytesCost
	case StoreIndU8:
		return StoreIndirectU8Cost
	case StoreIndU16:
		return StoreIndirectU16Cost
	case StoreIndU32:
		return StoreIndirectU32Cost
	case StoreIndU64:
		return StoreIndirectU64Cost
	case LoadIndU8:
		return LoadIndirectU8Cost
	case LoadIndI8:
		return LoadIndirectI8Cost
	case LoadIndU16:
		return LoadIndirectU16Cost
	case LoadIndI16:
		return LoadIndirectI16Cost
	case LoadIndU32:
		return LoadIndirectU32Cost
	case LoadIndI32:
		return LoadIndirectI32Cost
	case LoadIndU64:
		return LoadIndirectU64Cost
	case AddImm32:
		return AddImm32Cost
	case AndImm:
		return AndImmCost
	case XorImm:
		return XorImmCost
	case OrImm:
		return OrImmCost
	case MulImm32:
		return MulImm32Cost
	case SetLtUImm:
		return SetLessThanUnsignedImmCost
	case SetLtSImm:
		return SetLessThanSignedImmCost
	case ShloLImm32:
		return ShiftLogicalLeftImm32Cost
	case ShloRImm32:
		return ShiftLogicalRightImm32Cost
	case SharRImm32:
		return ShiftArithmeticRightImm32Cost
	case NegAddImm32:
		return NegateAndAddImm32Cost
	case SetGtUImm:
		return SetGreaterThanUnsignedImmCost
	case SetGtSImm:
		return SetGreaterThanSignedImmCost
	case ShloLImmAlt32:
		return ShiftLogicalLeftImmAlt32Cost
	case ShloRImmAlt32:
		return ShiftLogicalRightImmAlt32Cost
	case SharRImmAlt32:
		return ShiftArithmeticRightImmAlt32Cost
	case CmovIzImm:
		return CmovIfZeroImmCost
	case CmovNzImm:
		return CmovIfNotZeroImmCost
	case AddImm64:
		return AddImm64Cost
	case MulImm64:
		return MulImm64Cost
	case ShloLImm64:
		return ShiftLogicalLeftImm64Cost
	case ShloRImm64:
		return ShiftLogicalRightImm64Cost
	case SharRImm64:
		return ShiftArithmeticRightImm64Cost
	case NegAddImm64:
		return NegateAndAddImm64Cost
	case ShloLImmAlt64:
		return ShiftLogicalLeftImmAlt64Cost
	case ShloRImmAlt64:
		return ShiftLogicalRightImmAlt64Cost
	case SharRImmAlt64:
		return ShiftArithmeticRightImmAlt64Cost
	case RotR64Imm:
		return RotR64ImmCost
	case RotR64ImmAlt:
		return RotR64ImmAltCost
	case RotR32Imm:
		return RotR32ImmCost
	case RotR32ImmAlt:
		return RotR32ImmAltCost
	case BranchEq:
		return BranchEqCost
	case BranchNe:
		return BranchNotEqCost
	case BranchLtU:
		return BranchLessUnsignedCost
	case BranchLtS:
		return BranchLessSignedCost
	case BranchGeU:
		return BranchGreaterOrEqualUnsignedCost
	case BranchGeS:
		return BranchGreaterOrEqualSignedCost
	case LoadImmJumpInd:
		return LoadImmAndJumpIndirectCost
	case Add32:
		return Add32Cost
	case Sub32:
		return Sub32Cost
	case Mul32:
		return Mul32Cost
	case DivU32:
		return DivUnsigned32Cost
	case DivS32:
		return DivSigned32Cost
	case RemU32:
		return RemUnsigned32Cost
	case RemS32:
		return RemSigned32Cost
	case ShloL32:
		return ShiftLogicalLeft32Cost
	case ShloR32:
		return ShiftLogicalRight32Cost
	case SharR32:
		return ShiftArithmeticRight32Cost
	case Add64:
		return Add64Cost
	case Sub64:
		return Sub64Cost
	case Mul64:
		return Mul64Cost
	case DivU64:
		return DivUnsigned64Cost
	case DivS64:
		return DivSigned64Cost
	case RemU64:
		return RemUnsigned64Cost
	case RemS64:
		return RemSigned64Cost
	case ShloL64:
		return ShiftLogicalLeft64Cost
	case ShloR64:
		return ShiftLogicalRight64Cost
	case SharR64:
		return ShiftArithmeticRight64Cost
	case And:
		return AndCost
	case Xor:
		return XorCost
	case Or:
		return OrCost
	case MulUpperSS:
		return MulUpperSignedSignedCost
	case MulUpperUU:
		return MulUpperUnsignedUnsignedCost
	case MulUpperSU:
		return MulUpperSignedUnsignedCost
	case SetLtU:
		return SetLessThanUnsignedCost
	case SetLtS:
		return SetLessThanSignedCost
	case CmovIz:
		return CmovIfZeroCost
	case CmovNz:
		return CmovIfNotZeroCost
	case RotL64:
		return RotL64Cost
	case RotL32:
		return RotL32Cost
	case RotR64:
		return RotR64Cost
	case RotR32:
		return RotR32Cost
	case AndInv:
		return AndInvCost
	case OrInv:
		return OrInvCost
	case Xnor:
		return XnorCost
	case Max:
		return MaxCost
	case MaxU:
		return MaxUCost
	case Min:
		return MinCost
	case MinU:
		return MinUCost
	}
	return TrapCost
}

// step performs one fetch-decode-execute cycle. A decode failure traps
// before any gas is charged; gas is charged before any effect, so a
// partially affordable instruction never partially executes.
func (i *Instance) step() error {
	inst, err := Decode(i.code, i.instructionCounter)
	if err != nil {
		return ErrPanicf("%s", err)
	}

	cost := instructionCost(inst.Opcode)
	if err := i.deductGas(cost); err != nil {
		return err
	}
	if i.trace != nil {
		i.trace.record(i.instructionCounter, cost, i.gasRemaining, inst)
	}
	i.instructionLength = inst.Length

	return i.execute(inst)
}

func (i *Instance) execute(inst Instruction) error {
	switch inst.Opcode {
	case Trap:
		return i.Trap()
	case Fallthrough:
		i.Fallthrough()
	case Halt:
		return ErrHalt
	case Ecalli:
		return i.Ecalli(inst.Imm[0])
	case LoadImm64:
		i.LoadImm64(inst.Regs[0], inst.Imm[0])
	case StoreImmU8:
		return i.StoreImmU8(inst.Imm[0], inst.Imm[1])
	case StoreImmU16:
		return i.StoreImmU16(inst.Imm[0], inst.Imm[1])
	case StoreImmU32:
		return i.StoreImmU32(inst.Imm[0], inst.Imm[1])
	case StoreImmU64:
		return i.StoreImmU64(inst.Imm[0], inst.Imm[1])
	case Jump:
		return i.Jump(inst.Target)
	case JumpInd:
		return i.JumpInd(inst.Regs[0], inst.Imm[0])
	case LoadImm:
		i.LoadImm(inst.Regs[0], inst.Imm[0])
	case LoadU8:
		return i.LoadU8(inst.Regs[0], inst.Imm[0])
	case LoadI8:
		return i.LoadI8(inst.Regs[0], inst.Imm[0])
	case LoadU16:
		return i.LoadU16(inst.Regs[0], inst.Imm[0])
	case LoadI16:
		return i.LoadI16(inst.Regs[0], inst.Imm[0])
	case LoadU32:
		return i.LoadU32(inst.Regs[0], inst.Imm[0])
	case LoadI32:
		return i.LoadI32(inst.Regs[0], inst.Imm[0])
	case LoadU64:
		return i.LoadU64(inst.Regs[0], inst.Imm[0])
	case StoreU8:
		return i.StoreU8(inst.Regs[0], inst.Imm[0])
	case StoreU16:
		return i.StoreU16(inst.Regs[0], inst.Imm[0])
	case StoreU32:
		return i.StoreU32(inst.Regs[0], inst.Imm[0])
	case StoreU64:
		return i.StoreU64(inst.Regs[0], inst.Imm[0])
	case StoreImmIndU8:
		return i.StoreImmIndU8(inst.Regs[0], inst.Imm[0], inst.Imm[1])
	case StoreImmIndU16:
		return i.StoreImmIndU16(inst.Regs[0], inst.Imm[0], inst.Imm[1])
	case StoreImmIndU32:
		return i.StoreImmIndU32(inst.Regs[0], inst.Imm[0], inst.Imm[1])
	case StoreImmIndU64:
		return i.StoreImmIndU64(inst.Regs[0], inst.Imm[0], inst.Imm[1])
	case LoadImmJump:
		return i.LoadImmJump(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchEqImm:
		return i.BranchEqImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchNeImm:
		return i.BranchNeImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchLtUImm:
		return i.BranchLtUImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchLeUImm:
		return i.BranchLeUImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchGeUImm:
		return i.BranchGeUImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchGtUImm:
		return i.BranchGtUImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchLtSImm:
		return i.BranchLtSImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchLeSImm:
		return i.BranchLeSImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchGeSImm:
		return i.BranchGeSImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case BranchGtSImm:
		return i.BranchGtSImm(inst.Regs[0], inst.Imm[0], inst.Target)
	case MoveReg:
		i.MoveReg(inst.Regs[0], inst.Regs[1])
	case Sbrk:
		return i.SbrkAlloc(inst.Regs[0], inst.Regs[1])
	case CountSetBits64:
		i.CountSetBits64(inst.Regs[0], inst.Regs[1])
	case CountSetBits32:
		i.CountSetBits32(inst.Regs[0], inst.Regs[1])
	case LeadingZeroBits64:
		i.LeadingZeroBits64(inst.Regs[0], inst.Regs[1])
	case LeadingZeroBits32:
		i.LeadingZeroBits32(inst.Regs[0], inst.Regs[1])
	case TrailingZeroBits64:
		i.TrailingZeroBits64(inst.Regs[0], inst.Regs[1])
	case TrailingZeroBits32:
		i.TrailingZeroBits32(inst.Regs[0], inst.Regs[1])
	case SignExtend8:
		i.SignExtend8(inst.Regs[0], inst.Regs[1])
	case SignExtend16:
		i.SignExtend16(inst.Regs[0], inst.Regs[1])
	case ZeroExtend16:
		i.ZeroExtend16(inst.Regs[0], inst.Regs[1])
	case ReverseBytes:
		i.ReverseBytes(inst.Regs[0], inst.Regs[1])
	case StoreIndU8:
		return i.StoreIndU8(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case StoreIndU16:
		return i.StoreIndU16(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case StoreIndU32:
		return i.StoreIndU32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case StoreIndU64:
		return i.StoreIndU64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case LoadIndU8:
		return i.LoadIndU8(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case LoadIndI8:
		return i.LoadIndI8(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case LoadIndU16:
		return i.LoadIndU16(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case LoadIndI16:
		return i.LoadIndI16(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case LoadIndU32:
		return i.LoadIndU32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case LoadIndI32:
		return i.LoadIndI32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case LoadIndU64:
		return i.LoadIndU64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case AddImm32:
		i.AddImm32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case AndImm:
		i.AndImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case XorImm:
		i.XorImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case OrImm:
		i.OrImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case MulImm32:
		i.MulImm32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case SetLtUImm:
		i.SetLtUImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case SetLtSImm:
		i.SetLtSImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case ShloLImm32:
		i.ShloLImm32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case ShloRImm32:
		i.ShloRImm32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case SharRImm32:
		i.SharRImm32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case NegAddImm32:
		i.NegAddImm32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case SetGtUImm:
		i.SetGtUImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case SetGtSImm:
		i.SetGtSImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case ShloLImmAlt32:
		i.ShloLImmAlt32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case ShloRImmAlt32:
		i.ShloRImmAlt32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case SharRImmAlt32:
		i.SharRImmAlt32(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case CmovIzImm:
		i.CmovIzImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case CmovNzImm:
		i.CmovNzImm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case AddImm64:
		i.AddImm64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case MulImm64:
		i.MulImm64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case ShloLImm64:
		i.ShloLImm64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case ShloRImm64:
		i.ShloRImm64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case SharRImm64:
		i.SharRImm64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case NegAddImm64:
		i.NegAddImm64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case ShloLImmAlt64:
		i.ShloLImmAlt64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case ShloRImmAlt64:
		i.ShloRImmAlt64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case SharRImmAlt64:
		i.SharRImmAlt64(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case RotR64Imm:
		i.RotateRight64Imm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case RotR64ImmAlt:
		i.RotateRight64ImmAlt(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case RotR32Imm:
		i.RotateRight32Imm(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case RotR32ImmAlt:
		i.RotateRight32ImmAlt(inst.Regs[0], inst.Regs[1], inst.Imm[0])
	case BranchEq:
		return i.BranchEq(inst.Regs[0], inst.Regs[1], inst.Target)
	case BranchNe:
		return i.BranchNe(inst.Regs[0], inst.Regs[1], inst.Target)
	case BranchLtU:
		return i.BranchLtU(inst.Regs[0], inst.Regs[1], inst.Target)
	case BranchLtS:
		return i.BranchLtS(inst.Regs[0], inst.Regs[1], inst.Target)
	case BranchGeU:
		return i.BranchGeU(inst.Regs[0], inst.Regs[1], inst.Target)
	case BranchGeS:
		return i.BranchGeS(inst.Regs[0], inst.Regs[1], inst.Target)
	case LoadImmJumpInd:
		return i.LoadImmJumpInd(inst.Regs[0], inst.Regs[1], inst.Imm[0], inst.Imm[1])
	case Add32:
		i.Add32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Sub32:
		i.Sub32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Mul32:
		i.Mul32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case DivU32:
		i.DivU32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case DivS32:
		i.DivS32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case RemU32:
		i.RemU32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case RemS32:
		i.RemS32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case ShloL32:
		i.ShloL32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case ShloR32:
		i.ShloR32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case SharR32:
		i.SharR32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Add64:
		i.Add64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Sub64:
		i.Sub64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Mul64:
		i.Mul64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case DivU64:
		i.DivU64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case DivS64:
		i.DivS64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case RemU64:
		i.RemU64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case RemS64:
		i.RemS64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case ShloL64:
		i.ShloL64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case ShloR64:
		i.ShloR64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case SharR64:
		i.SharR64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case And:
		i.And(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Xor:
		i.Xor(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Or:
		i.Or(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case MulUpperSS:
		i.MulUpperSS(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case MulUpperUU:
		i.MulUpperUU(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case MulUpperSU:
		i.MulUpperSU(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case SetLtU:
		i.SetLtU(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case SetLtS:
		i.SetLtS(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case CmovIz:
		i.CmovIz(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case CmovNz:
		i.CmovNz(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case RotL64:
		i.RotateLeft64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case RotL32:
		i.RotateLeft32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case RotR64:
		i.RotateRight64(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case RotR32:
		i.RotateRight32(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case AndInv:
		i.AndInverted(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case OrInv:
		i.OrInverted(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Xnor:
		i.Xnor(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Max:
		i.Max(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case MaxU:
		i.MaxUnsigned(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case Min:
		i.Min(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	case MinU:
		i.MinUnsigned(inst.Regs[2], inst.Regs[0], inst.Regs[1])
	}
	return nil
}
