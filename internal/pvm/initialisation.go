package pvm

import (
	"errors"

	"github.com/jamberry/jamberry/internal/safemath"
)

const (
	AddressSpaceSize    = 1 << 32
	InputDataSize       = 1 << 24                     // standard program initialization input data size
	MemoryZoneSize      = 1 << 16                     // standard program initialization zone size
	PageSize            = 1 << 12                     // memory page size
	MaxPageIndex        = AddressSpaceSize / PageSize // 2^32 / PageSize = 1 << 20
	AddressReturnToHost = AddressSpaceSize - MemoryZoneSize
	StackAddressHigh    = AddressSpaceSize - 2*MemoryZoneSize - InputDataSize
	ArgsAddressLow      = AddressSpaceSize - MemoryZoneSize - InputDataSize
)

var ErrMemoryLayoutOverflowsAddressSpace = errors.New("memory layout overflows address space")

// InitializeStandardProgram builds the standard memory layout and register
// seed for one program image and its input bytes.
func InitializeStandardProgram(program *Program, argsData []byte) (Memory, Registers, error) {
	ram, err := InitializeMemory(program.ROData, program.RWData, argsData, program.StackSize, program.HeapPages)
	if err != nil {
		return Memory{}, Registers{}, err
	}
	regs := InitializeRegisters(len(argsData))
	return ram, regs, nil
}

// InitializeMemory lays out the four segments of the standard address space:
// RO data based at one zone, RW data plus heap at the next zone boundary
// after RO, the stack descending below the input region, and the read-only
// input ("args") region near the top of the 32-bit space.
func InitializeMemory(roData, rwData, argsData []byte, stackSize uint32, initialPages uint16) (Memory, error) {
	stackSizeRounded2Page, err := roundUpToPage(stackSize)
	if err != nil {
		return Memory{}, err
	}
	stackSizeRounded2Zone, err := roundUpToZone(stackSize)
	if err != nil {
		return Memory{}, err
	}
	rwDataRounded2Zone, err := roundUpToZone(uint32(len(rwData)) + uint32(initialPages)*PageSize)
	if err != nil {
		return Memory{}, err
	}
	rwDataRounded2Page, err := roundUpToPage(uint32(len(rwData)))
	if err != nil {
		return Memory{}, err
	}
	roDataRounded2Page, err := roundUpToPage(uint32(len(roData)))
	if err != nil {
		return Memory{}, err
	}
	roDataRounded2Zone, err := roundUpToZone(uint32(len(roData)))
	if err != nil {
		return Memory{}, err
	}
	argsDataRounded2Page, err := roundUpToPage(uint32(len(argsData)))
	if err != nil {
		return Memory{}, err
	}
	// 5Z + Z(|o|) + Z(|w| + zP) + Z(s) + I must fit the 32-bit address space
	v, ok := safemath.Mul[uint32](5, MemoryZoneSize)
	if !ok {
		return Memory{}, ErrMemoryLayoutOverflowsAddressSpace
	}
	v, ok = safemath.Add(v, roDataRounded2Zone)
	if !ok {
		return Memory{}, ErrMemoryLayoutOverflowsAddressSpace
	}
	v, ok = safemath.Add(v, rwDataRounded2Zone)
	if !ok {
		return Memory{}, ErrMemoryLayoutOverflowsAddressSpace
	}
	v, ok = safemath.Add(v, stackSizeRounded2Zone)
	if !ok {
		return Memory{}, ErrMemoryLayoutOverflowsAddressSpace
	}
	_, ok = safemath.Add(v, InputDataSize)
	if !ok {
		return Memory{}, ErrMemoryLayoutOverflowsAddressSpace
	}

	mem := Memory{
		ro: memorySegment{
			address: MemoryZoneSize,
			access:  ReadOnly,
			data:    copySized(roData, roDataRounded2Page),
		},
		rw: memorySegment{
			address: 2*MemoryZoneSize + roDataRounded2Zone,
			access:  ReadWrite,
			data:    copySized(rwData, rwDataRounded2Page+uint32(initialPages)*PageSize),
		},
		stack: memorySegment{
			address: StackAddressHigh - stackSizeRounded2Page,
			access:  ReadWrite,
			data:    make([]byte, stackSizeRounded2Page),
		},
		args: memorySegment{
			address: ArgsAddressLow,
			access:  ReadOnly,
			data:    copySized(argsData, argsDataRounded2Page),
		},
	}
	mem.ro.end = mem.ro.address + uint32(len(mem.ro.data))
	mem.rw.end = mem.rw.address + uint32(len(mem.rw.data))
	mem.stack.end = mem.stack.address + uint32(len(mem.stack.data))
	mem.args.end = mem.args.address + uint32(len(mem.args.data))
	mem.currentHeapPointer = mem.rw.end
	return mem, nil
}

// InitializeRegisters seeds the register file: return address sentinel,
// stack pointer, input pointer and input length. All others start at zero.
func InitializeRegisters(argsLen int) Registers {
	return Registers{
		R0: AddressReturnToHost,
		R1: StackAddressHigh,
		R7: ArgsAddressLow,
		R8: uint64(argsLen),
	}
}

func copySized(data []byte, size uint32) []byte {
	dst := make([]byte, size)
	copy(dst, data)
	return dst
}

// roundUpToPage P(x) ≡ PageSize⌈x/PageSize⌉
func roundUpToPage(value uint32) (uint32, error) {
	v, ok := safemath.Add(value, PageSize-1)
	if !ok {
		return 0, ErrMemoryLayoutOverflowsAddressSpace
	}
	roundedUpVal, ok := safemath.Mul(PageSize, v/PageSize)
	if !ok {
		return 0, ErrMemoryLayoutOverflowsAddressSpace
	}
	return roundedUpVal, nil
}

// roundUpToZone Z(x) ≡ MemoryZoneSize⌈x/MemoryZoneSize⌉
func roundUpToZone(value uint32) (uint32, error) {
	v, ok := safemath.Add(value, MemoryZoneSize-1)
	if !ok {
		return 0, ErrMemoryLayoutOverflowsAddressSpace
	}
	roundedUpVal, ok := safemath.Mul(MemoryZoneSize, v/MemoryZoneSize)
	if !ok {
		return 0, ErrMemoryLayoutOverflowsAddressSpace
	}
	return roundedUpVal, nil
}
