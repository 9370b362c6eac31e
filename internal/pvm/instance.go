package pvm

// Registers the 13 general purpose machine words (φ)
type Registers [13]uint64

// Gas the unsigned gas counter (ϱ). Monotonically non-increasing during
// execution; the charge for a step is refused outright when it exceeds the
// remainder, so the counter never wraps.
type Gas uint64

// HostCallFn handles one ecalli instruction. It receives the host call
// index, the remaining gas and a register snapshot, may read and write
// memory, and returns the gas and registers to continue with. A returned
// error terminates the invocation with that reason.
type HostCallFn func(index uint64, gas Gas, regs Registers, mem *Memory) (Gas, Registers, error)

// Instance a single execution context: register file, instruction counter,
// gas counter and memory. Created per invocation, run to a terminal state,
// then discarded. No state is shared between instances.
type Instance struct {
	memory             Memory
	regs               Registers
	instructionCounter uint64 // byte offset into code (ı)
	gasLimit           Gas
	gasRemaining       Gas
	code               []byte
	jumpTable          *JumpTable
	allowDynamicAlloc  bool
	hostCall           HostCallFn
	trace              *Trace

	instructionLength uint64  // bytes consumed by the instruction in flight
	loadBuf           [8]byte // reusable buffer for load operations
	storeBuf          [8]byte // reusable buffer for store operations
}

// SetHostCall installs the handler invoked for ecalli. Without one the
// instruction traps.
func (i *Instance) SetHostCall(fn HostCallFn) {
	i.hostCall = fn
}

// SetTrace attaches a write-only execution trace. The trace never
// influences execution.
func (i *Instance) SetTrace(t *Trace) {
	i.trace = t
}

func (i *Instance) deductGas(cost Gas) error {
	if i.gasRemaining < cost {
		return ErrOutOfGas
	}
	i.gasRemaining -= cost
	return nil
}

// advance ı′ = ı + |instruction|
func (i *Instance) advance() {
	i.instructionCounter += i.instructionLength
}

func (i *Instance) setAndAdvance(dst Reg, value uint64) {
	i.regs[dst] = value
	i.advance()
}

// branch moves the instruction counter to target when the condition holds,
// otherwise past the current instruction. A target outside the code buffer
// is not rejected here; the next step traps on it deterministically.
func (i *Instance) branch(condition bool, target uint64) error {
	if condition {
		i.instructionCounter = target
	} else {
		i.advance()
	}
	return nil
}

// djump resolves an indirect jump. The return-to-host sentinel address
// halts; otherwise the address indexes the jump table modulo its length.
// An indirect jump through an empty table is a trap.
func (i *Instance) djump(address uint64) error {
	if address == AddressReturnToHost {
		return ErrHalt
	}
	dest, ok := i.jumpTable.Destination(address)
	if !ok {
		return ErrPanicf("indirect jump to address %v with an empty jump table", address)
	}
	i.instructionCounter = dest
	return nil
}

func (i *Instance) Results() (uint64, Gas, Registers, Memory) {
	return i.instructionCounter, i.gasRemaining, i.regs, i.memory
}

// GasUsed the portion of the budget consumed so far
func (i *Instance) GasUsed() Gas {
	return i.gasLimit - i.gasRemaining
}
