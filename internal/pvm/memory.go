package pvm

import (
	"github.com/jamberry/jamberry/internal/safemath"
)

type MemoryAccess int

const (
	Inaccessible MemoryAccess = iota
	ReadOnly
	ReadWrite
)

// Memory a set of fixed-base, fixed-size memory segments with per-segment
// writability (RO data, RW data + heap, stack, input args). The segments are
// created once at instance initialization and never overlap; every access
// must fall entirely within one segment.
type Memory struct {
	ro                 memorySegment
	rw                 memorySegment
	stack              memorySegment
	args               memorySegment
	currentHeapPointer uint32
}

type memorySegment struct {
	address uint32
	end     uint32
	data    []byte
	access  MemoryAccess
}

// Read reads len(data) bytes starting at address. An access not fully
// contained in a readable segment is a page fault carrying the access
// address; registers and memory stay unmodified.
func (m *Memory) Read(address uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	end, ok := safemath.Add(address, uint32(len(data)))
	if !ok {
		return &ErrPageFault{Reason: "address overflow", Address: address}
	}

	var memoryData []byte
	access := Inaccessible
	if address >= m.stack.address && end <= m.stack.end {
		memoryData = m.stack.data[address-m.stack.address : end-m.stack.address]
		access = m.stack.access
	} else if address >= m.rw.address && end <= m.currentHeapPointer {
		memoryData = m.rw.data[address-m.rw.address : end-m.rw.address]
		access = m.rw.access
	} else if address >= m.ro.address && end <= m.ro.end {
		memoryData = m.ro.data[address-m.ro.address : end-m.ro.address]
		access = m.ro.access
	} else if address >= m.args.address && end <= m.args.end {
		memoryData = m.args.data[address-m.args.address : end-m.args.address]
		access = m.args.access
	}

	if access == Inaccessible {
		return &ErrPageFault{Reason: "inaccessible memory", Address: address}
	}
	copy(data, memoryData)
	return nil
}

// Write writes len(data) bytes starting at address. Writes additionally
// require the containing segment to be writeable.
func (m *Memory) Write(address uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	end, ok := safemath.Add(address, uint32(len(data)))
	if !ok {
		return &ErrPageFault{Reason: "address overflow", Address: address}
	}

	var memoryData []byte
	access := Inaccessible
	if address >= m.stack.address && end <= m.stack.end {
		memoryData = m.stack.data[address-m.stack.address : end-m.stack.address]
		access = m.stack.access
	} else if address >= m.rw.address && end <= m.currentHeapPointer {
		memoryData = m.rw.data[address-m.rw.address : end-m.rw.address]
		access = m.rw.access
	} else if address >= m.ro.address && end <= m.ro.end {
		access = m.ro.access
	} else if address >= m.args.address && end <= m.args.end {
		access = m.args.access
	}

	if access != ReadWrite {
		if access == Inaccessible {
			return &ErrPageFault{Reason: "inaccessible memory", Address: address}
		}
		return &ErrPageFault{Reason: "memory at address is not writeable", Address: address}
	}
	copy(memoryData, data)
	return nil
}

// Sbrk advances the heap pointer by size bytes, growing the RW segment onto
// fresh pages when the allocation crosses the current page boundary, and
// returns the old pointer.
func (m *Memory) Sbrk(size uint32) (uint32, error) {
	if size == 0 {
		return m.currentHeapPointer, nil
	}

	result := m.currentHeapPointer

	nextPageBoundary, err := roundUpToPage(m.currentHeapPointer)
	if err != nil {
		return 0, ErrPanicf("unable to find the next page boundary: %s", err)
	}
	newHeapPointer, ok := safemath.Add(m.currentHeapPointer, size)
	if !ok {
		return 0, ErrPanicf("heap pointer overflow")
	}
	if uint64(newHeapPointer) > uint64(m.stack.address) {
		return 0, ErrPanicf("heap allocation of %d bytes collides with the stack", size)
	}

	if newHeapPointer > nextPageBoundary {
		finalBoundary, err := roundUpToPage(newHeapPointer)
		if err != nil {
			return 0, ErrPanicf("unable to find the next page boundary: %s", err)
		}
		required := finalBoundary - m.rw.address
		if uint32(len(m.rw.data)) < required {
			newData := make([]byte, required)
			copy(newData, m.rw.data)
			m.rw.data = newData
		}
		m.rw.end = m.rw.address + uint32(len(m.rw.data))
	}

	m.currentHeapPointer = newHeapPointer
	return result, nil
}

// HeapPointer the current top of the heap
func (m *Memory) HeapPointer() uint32 {
	return m.currentHeapPointer
}
