// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line is a single assembled source line. Words has its label removed.
type Line struct {
	LineNo int
	Label  string
	Words  []string
	Code   Code
}

// Program is an assembled memory image, one cell per source line.
type Program struct {
	Lines  []Line
	Labels map[string]int
}

// Debug returns the source line loaded at addr, or nil.
func (prog *Program) Debug(addr int) (line *Line) {
	if addr >= 0 && addr < len(prog.Lines) {
		line = &prog.Lines[addr]
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []int) {
	for _, code := range prog.Codes() {
		bins = append(bins, int(code))
	}

	return
}

// Codes iterates over the (address, opcode) pairs of the program.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(addr int, code Code) bool) {
		for addr, line := range prog.Lines {
			if !yield(addr, line.Code) {
				return
			}
		}
	}
}

// Listing writes an assembly listing of the program.
func (prog *Program) Listing(w io.Writer) (err error) {
	for addr, line := range prog.Lines {
		label := line.Label
		if len(label) != 0 {
			label += ":"
		}
		_, err = fmt.Fprintf(w, "%02d: %03d  %-10s %v\n", addr, int(line.Code), label, strings.Join(line.Words, " "))
		if err != nil {
			return
		}
	}

	return
}
