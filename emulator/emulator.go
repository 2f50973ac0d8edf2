// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	goio "io"
	"log"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
)

// Emulator state. CPU + program listing + IO channel.
type Emulator struct {
	Verbose   bool         // If set, enables verbose logging.
	*cpu.Cpu               // Reference to the CPU simulation.
	Program   *cpu.Program // Reference to the currently running program listing.
	Channel   cpu.Channel  // IO channel for INP and OUT.
	Trace     goio.Writer  // If set, the machine state is written before every fetch.
	StepLimit int          // If non-zero, the maximum number of instructions to execute.

	Tape io.Tape // Default IO channel.

	steps int
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Channel = &emu.Tape

	return
}

// Reset the emulator, and load the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.SetChannel(emu.Channel)

	emu.steps = 0

	err = emu.Cpu.Load(emu.Program)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d cells, %d labels", len(emu.Program.Lines), len(emu.Program.Labels))
	}

	return
}

// Steps returns the number of instructions executed since a reset.
func (emu *Emulator) Steps() int {
	return emu.steps
}

// Line returns the source line for the instruction at the program counter.
func (emu *Emulator) Line() (line *cpu.Line) {
	return emu.Program.Debug(emu.Cpu.Counter())
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Cpu.Counter()
	defer func() {
		if err != nil {
			rerr := &ErrRuntime{Addr: addr, LineNo: -1, Err: err}
			line := emu.Program.Debug(addr)
			if line != nil {
				rerr.LineNo = line.LineNo
				rerr.Line = line.Words
			}
			err = rerr
		}
	}()

	if emu.StepLimit > 0 && emu.steps >= emu.StepLimit {
		err = ErrStepLimit
		return
	}

	if emu.Trace != nil {
		_, err = fmt.Fprint(emu.Trace, emu.Cpu.String())
		if err != nil {
			return
		}
	}

	emu.steps++

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
