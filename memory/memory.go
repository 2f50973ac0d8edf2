// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the decimal cell store of the Little Man Computer.
package memory

import (
	"fmt"
	"iter"
	"log"
	"strings"
)

const (
	MEMORY_SIZE = 100 // Number of addressable cells.
	CELL_MAX    = 999 // Largest value a cell can hold.
)

// Memory is a fixed array of cells, each holding a value in [0, CELL_MAX].
type Memory struct {
	Verbose bool // If set, logs every committed write.

	cell [MEMORY_SIZE]int
}

// NewMemory creates a new, zeroed memory.
func NewMemory() (mem *Memory) {
	mem = &Memory{}

	return
}

// Reset zeroes all cells.
func (mem *Memory) Reset() {
	clear(mem.cell[:])
}

// checkAddr verifies that addr names a cell.
func checkAddr(addr int) (err error) {
	if addr < 0 || addr >= MEMORY_SIZE {
		err = ErrAddress(addr)
	}
	return
}

// checkValue verifies that value fits in a cell.
func checkValue(value int) (err error) {
	if value < 0 || value > CELL_MAX {
		err = ErrValue(value)
	}
	return
}

// Read returns the value at addr.
func (mem *Memory) Read(addr int) (value int, err error) {
	err = checkAddr(addr)
	if err != nil {
		return
	}

	value = mem.cell[addr]
	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr int, value int) (err error) {
	return mem.WriteRange(addr, []int{value})
}

// WriteRange stores values at consecutive cells starting at start.
// Either every cell is written, or none are.
func (mem *Memory) WriteRange(start int, values []int) (err error) {
	if len(values) == 0 {
		return
	}

	err = checkAddr(start)
	if err != nil {
		return
	}
	err = checkAddr(start + len(values) - 1)
	if err != nil {
		return
	}

	for _, value := range values {
		err = checkValue(value)
		if err != nil {
			return
		}
	}

	copy(mem.cell[start:], values)

	if mem.Verbose {
		log.Printf("memory: [%02d:%02d] = %v", start, start+len(values), values)
	}

	return
}

// Slice returns a copy of the cells in [start, end).
func (mem *Memory) Slice(start, end int) (values []int) {
	start = max(start, 0)
	end = min(end, MEMORY_SIZE)
	if start >= end {
		return
	}

	values = make([]int, end-start)
	copy(values, mem.cell[start:end])

	return
}

// Cells iterates over every (address, value) pair.
func (mem *Memory) Cells() iter.Seq2[int, int] {
	return func(yield func(addr int, value int) bool) {
		for addr, value := range mem.cell {
			if !yield(addr, value) {
				return
			}
		}
	}
}

// String returns the cells as a bracketed list.
func (mem *Memory) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for addr, value := range mem.Cells() {
		if addr != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", value)
	}
	sb.WriteByte(']')

	return sb.String()
}
