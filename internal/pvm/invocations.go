package pvm

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// Result the terminal outcome of one invocation. Gas consumed and the final
// register snapshot are reported for every status; the host charges gas and
// records an outcome even for programs that fail.
type Result struct {
	Status       Status
	Reason       string // trap reason, empty for the other statuses
	FaultAddress uint32 // set for page faults
	Registers    Registers
	GasUsed      Gas
	Output       []byte // set on halt when r7/r8 point at readable memory
}

// InitFromContainer parses the program container and builds a ready-to-run
// instance with the standard memory layout and register seed.
func InitFromContainer(blob, input []byte, gasLimit Gas, allowDynamicAlloc bool) (*Instance, error) {
	program, err := ParseProgram(blob)
	if err != nil {
		return nil, err
	}
	ram, regs, err := InitializeStandardProgram(program, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedProgram, err)
	}
	return &Instance{
		memory:            ram,
		regs:              regs,
		gasLimit:          gasLimit,
		gasRemaining:      gasLimit,
		code:              program.Code,
		jumpTable:         program.JumpTable,
		allowDynamicAlloc: allowDynamicAlloc,
	}, nil
}

// InitSimple bypasses the container header for callers that already hold
// raw code and sizes. The instance starts with zeroed registers apart from
// the standard seed, an empty jump table and no input region.
func InitSimple(code []byte, stackSize uint32, heapPages uint16, gasLimit Gas, allowDynamicAlloc bool) (*Instance, error) {
	ram, err := InitializeMemory(nil, nil, nil, stackSize, heapPages)
	if err != nil {
		return nil, err
	}
	return &Instance{
		memory:            ram,
		regs:              InitializeRegisters(0),
		gasLimit:          gasLimit,
		gasRemaining:      gasLimit,
		code:              bytes.Clone(code),
		jumpTable:         &JumpTable{},
		allowDynamicAlloc: allowDynamicAlloc,
	}, nil
}

// Run drives the instance to a terminal state. It never aborts the host
// process: any byte sequence as a program produces a well-formed Result
// with the gas consumed so far and the final registers.
func (i *Instance) Run() (result Result) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = Result{
				Status:    StatusTrap,
				Reason:    fmt.Sprintf("unexpected program termination: %v", recovered),
				Registers: i.regs,
				GasUsed:   i.GasUsed(),
			}
		}
	}()

	var err error
	for err == nil {
		err = i.step()
	}

	result = Result{Registers: i.regs, GasUsed: i.GasUsed()}
	pageFault := &ErrPageFault{}
	switch {
	case errors.Is(err, ErrHalt):
		result.Status = StatusHalt
		result.Output = i.haltOutput()
	case errors.Is(err, ErrOutOfGas):
		result.Status = StatusOutOfGas
	case errors.As(err, &pageFault):
		result.Status = StatusPageFault
		result.FaultAddress = pageFault.Address
		result.Reason = pageFault.Reason
	default:
		result.Status = StatusTrap
		result.Reason = err.Error()
	}
	return result
}

// haltOutput reads the conventional output range [r7, r7+r8). When the
// range is not fully readable the halt carries no output.
func (i *Instance) haltOutput() []byte {
	addr, length := i.regs[R7], i.regs[R8]
	if addr > math.MaxUint32 || length > math.MaxUint32 {
		return nil
	}
	out := make([]byte, length)
	if err := i.memory.Read(uint32(addr), out); err != nil {
		return nil
	}
	return out
}
