package pvm

import "github.com/rs/zerolog"

// Trace a write-only per-step observer. It records the step index, counter
// position, gas charged and the rendered instruction through a zerolog
// logger. Purely diagnostic; it never influences the execution result.
type Trace struct {
	log          zerolog.Logger
	initialGas   Gas
	stepCounter  uint64
	totalGasUsed Gas
}

func NewTrace(log zerolog.Logger, initialGas Gas) *Trace {
	return &Trace{log: log, initialGas: initialGas}
}

func (t *Trace) record(pc uint64, cost Gas, remaining Gas, inst Instruction) {
	t.stepCounter++
	t.totalGasUsed += cost
	t.log.Debug().
		Uint64("step", t.stepCounter).
		Uint64("pc", pc).
		Uint64("gas_cost", uint64(cost)).
		Uint64("gas_remaining", uint64(remaining)).
		Uint64("total_used", uint64(t.totalGasUsed)).
		Msg(RenderInstruction(inst))
}

func (t *Trace) InitialGas() Gas {
	return t.initialGas
}

func (t *Trace) Steps() uint64 {
	return t.stepCounter
}

func (t *Trace) TotalGasUsed() Gas {
	return t.totalGasUsed
}
