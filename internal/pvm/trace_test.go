package pvm

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceRecordsEveryStep(t *testing.T) {
	code := prog(
		asmRegImm(LoadImm, R1, 42, 1),
		asmReg2Imm(AddImm64, R2, R1, 1, 1),
		asmNone(Halt),
	)
	instance, err := InitSimple(code, 4096, 0, 100, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	trace := NewTrace(logger, 100)
	instance.SetTrace(trace)

	result := instance.Run()
	require.Equal(t, StatusHalt, result.Status)

	assert.Equal(t, Gas(100), trace.InitialGas())
	assert.Equal(t, uint64(3), trace.Steps())
	assert.Equal(t, result.GasUsed, trace.TotalGasUsed())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	var first struct {
		Step         uint64 `json:"step"`
		PC           uint64 `json:"pc"`
		GasCost      uint64 `json:"gas_cost"`
		GasRemaining uint64 `json:"gas_remaining"`
		Message      string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, uint64(1), first.Step)
	assert.Equal(t, uint64(0), first.PC)
	assert.Equal(t, uint64(1), first.GasCost)
	assert.Equal(t, uint64(99), first.GasRemaining)
	assert.Equal(t, "load_imm r1, 0x2a", first.Message)
}

func TestTraceDoesNotChangeTheResult(t *testing.T) {
	code := prog(
		asmRegImm(LoadImm, R1, 7, 1),
		asmReg3(Mul64, R1, R1, R2),
		asmNone(Halt),
	)

	plain, err := InitSimple(code, 4096, 0, 100, false)
	require.NoError(t, err)
	traced, err := InitSimple(code, 4096, 0, 100, false)
	require.NoError(t, err)
	traced.SetTrace(NewTrace(zerolog.Nop(), 100))

	assert.Equal(t, plain.Run(), traced.Run())
}
