package pvm

import "fmt"

// ErrPanic irregular program termination caused by some exceptional circumstance (☇)
type ErrPanic struct {
	msg  string
	args []any
}

func ErrPanicf(msg string, args ...any) *ErrPanic {
	return &ErrPanic{msg: msg, args: args}
}

func (e *ErrPanic) Error() string {
	return fmt.Sprintf("panic: "+e.msg, e.args...)
}

// ErrOutOfGas exhaustion of gas (∞)
var ErrOutOfGas = fmt.Errorf("out of gas")

// ErrPageFault an attempt to access some address in RAM which is not accessible.
// This includes the address at fault. (F)
type ErrPageFault struct {
	Reason  string
	Address uint32
}

func (e *ErrPageFault) Error() string {
	return fmt.Sprintf("page fault %s: address=%d", e.Reason, e.Address)
}

// ErrHalt regular program termination (∎)
var ErrHalt = fmt.Errorf("halt")

// ErrInvalidOpcode the opcode byte does not name any instruction
type ErrInvalidOpcode struct {
	Opcode Opcode
	Offset uint64
}

func (e *ErrInvalidOpcode) Error() string {
	return fmt.Sprintf("invalid opcode %d at offset %d", e.Opcode, e.Offset)
}

// ErrTruncatedInstruction the instruction claims more trailing bytes than the code buffer holds
type ErrTruncatedInstruction struct {
	Opcode Opcode
	Offset uint64
}

func (e *ErrTruncatedInstruction) Error() string {
	return fmt.Sprintf("truncated instruction %s at offset %d", e.Opcode, e.Offset)
}

// Status is the terminal state of one invocation. Every execution ends in
// exactly one of these; failures are data, never a process fault.
type Status int

const (
	StatusHalt Status = iota
	StatusTrap
	StatusOutOfGas
	StatusPageFault
)

func (s Status) String() string {
	switch s {
	case StatusHalt:
		return "halt"
	case StatusTrap:
		return "trap"
	case StatusOutOfGas:
		return "out-of-gas"
	case StatusPageFault:
		return "page-fault"
	}
	return "unknown"
}
