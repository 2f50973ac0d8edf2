// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	goio "io"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
)

// Interpret assembles tokenized program lines and runs them to a halt
// on a fresh machine, returning the final machine state.
//
// A nil channel is an empty queue, and a limit of 0 runs without a step
// budget.
func Interpret(lines [][]string, channel cpu.Channel, trace goio.Writer, limit int) (state *cpu.Cpu, err error) {
	asm := &cpu.Assembler{}
	prog, err := asm.Assemble(lines)
	if err != nil {
		return
	}

	emu := NewEmulator()
	emu.Program = prog
	emu.Trace = trace
	emu.StepLimit = limit
	if channel == nil {
		channel = io.NewQueue()
	}
	emu.Channel = channel

	err = emu.Reset()
	if err != nil {
		return
	}

	state = emu.Cpu

	err = emu.Run()

	return
}
