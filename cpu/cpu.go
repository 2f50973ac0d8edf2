// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/memory"
)

// Channel is an I/O channel interface.
type Channel io.Channel

const (
	COUNTER_MAX     = memory.MEMORY_SIZE - 1 // Largest program counter.
	ACCUMULATOR_MAX = memory.CELL_MAX        // Largest accumulator magnitude.
)

// Register names accepted by Get and Set.
const (
	REG_COUNTER     = "counter"
	REG_ACCUMULATOR = "accumulator"
	REG_MINUS_FLAG  = "minus_flag"
)

// Cpu is the machine state of the Little Man Computer: the program counter,
// the accumulator magnitude and its sign flag, the memory, and the label
// table of the loaded program.
//
// Every mutation is validated before it is committed.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	counter     int
	accumulator int
	minus       bool
	memory      *memory.Memory
	labels      map[string]int

	channel Channel
}

// NewCpu creates a new, zeroed CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		memory: memory.NewMemory(),
		labels: map[string]int{},
	}

	return
}

// Reset clears the registers, memory and labels.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.counter = 0
	cpu.accumulator = 0
	cpu.minus = false
	cpu.memory.Reset()
	clear(cpu.labels)

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}
}

// Load resets the CPU, then copies the program image and labels into it.
func (cpu *Cpu) Load(prog *Program) (err error) {
	cpu.Reset()

	err = cpu.LoadMemory(0, prog.Binary())
	if err != nil {
		return
	}

	maps.Copy(cpu.labels, prog.Labels)

	return
}

// SetChannel attaches the I/O channel used by INP and OUT.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// Counter returns the program counter.
func (cpu *Cpu) Counter() int {
	return cpu.counter
}

// SetCounter sets the program counter.
func (cpu *Cpu) SetCounter(value int) (err error) {
	if value < 0 || value > COUNTER_MAX {
		err = fmt.Errorf("%w: %v", ErrStateInvalid, f("counter %d not in range 0 - %d", value, COUNTER_MAX))
		return
	}
	cpu.counter = value
	return
}

// Accumulator returns the accumulator magnitude.
func (cpu *Cpu) Accumulator() int {
	return cpu.accumulator
}

// SetAccumulator sets the accumulator magnitude.
func (cpu *Cpu) SetAccumulator(value int) (err error) {
	if value < 0 || value > ACCUMULATOR_MAX {
		err = fmt.Errorf("%w: %v", ErrStateInvalid, f("accumulator %d not in range 0 - %d", value, ACCUMULATOR_MAX))
		return
	}
	cpu.accumulator = value
	return
}

// Minus returns true if the accumulator holds a negative value.
func (cpu *Cpu) Minus() bool {
	return cpu.minus
}

// SetMinus sets the accumulator sign flag.
func (cpu *Cpu) SetMinus(minus bool) {
	cpu.minus = minus
}

// Signed returns the accumulator with its sign applied.
func (cpu *Cpu) Signed() int {
	if cpu.minus {
		return -cpu.accumulator
	}
	return cpu.accumulator
}

// Get reads a register by name.
func (cpu *Cpu) Get(name string) (value int, err error) {
	switch name {
	case REG_COUNTER:
		value = cpu.counter
	case REG_ACCUMULATOR:
		value = cpu.accumulator
	case REG_MINUS_FLAG:
		if cpu.minus {
			value = 1
		}
	default:
		err = errors.Join(ErrStateInvalid, ErrRegisterInvalid, errors.New(name))
	}
	return
}

// Set writes a register by name. The minus flag accepts 0 or 1.
func (cpu *Cpu) Set(name string, value int) (err error) {
	switch name {
	case REG_COUNTER:
		err = cpu.SetCounter(value)
	case REG_ACCUMULATOR:
		err = cpu.SetAccumulator(value)
	case REG_MINUS_FLAG:
		if value != 0 && value != 1 {
			err = fmt.Errorf("%w: %v", ErrStateInvalid, f("minus_flag %d is not 0 or 1", value))
			return
		}
		cpu.SetMinus(value == 1)
	default:
		err = errors.Join(ErrStateInvalid, ErrRegisterInvalid, errors.New(name))
	}
	return
}

// ReadMemory returns the value of a memory cell.
func (cpu *Cpu) ReadMemory(addr int) (value int, err error) {
	value, err = cpu.memory.Read(addr)
	if err != nil {
		err = errors.Join(ErrStateInvalid, err)
	}
	return
}

// WriteMemory sets the value of a memory cell.
func (cpu *Cpu) WriteMemory(addr int, value int) (err error) {
	err = cpu.memory.Write(addr, value)
	if err != nil {
		err = errors.Join(ErrStateInvalid, err)
	}
	return
}

// LoadMemory sets consecutive memory cells, all or none.
func (cpu *Cpu) LoadMemory(start int, values []int) (err error) {
	err = cpu.memory.WriteRange(start, values)
	if err != nil {
		err = errors.Join(ErrStateInvalid, err)
	}
	return
}

// Memory returns a copy of all memory cells.
func (cpu *Cpu) Memory() []int {
	return cpu.memory.Slice(0, memory.MEMORY_SIZE)
}

// Label returns the line number bound to a label.
func (cpu *Cpu) Label(name string) (line int, ok bool) {
	line, ok = cpu.labels[name]
	return
}

// Labels returns a copy of the label table.
func (cpu *Cpu) Labels() map[string]int {
	return maps.Clone(cpu.labels)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var labels []string
	for _, name := range slices.Sorted(maps.Keys(cpu.labels)) {
		labels = append(labels, fmt.Sprintf("%v:%d", name, cpu.labels[name]))
	}

	text = "\n"
	text += fmt.Sprintf("Counter: %d\n", cpu.counter)
	text += fmt.Sprintf("Accumulator: %d\n", cpu.accumulator)
	text += fmt.Sprintf("Minus flag: %v\n", cpu.minus)
	text += fmt.Sprintf("Memory: %v\n", cpu.memory)
	text += fmt.Sprintf("Labels: {%v}\n", strings.Join(labels, " "))

	return
}

// FetchCode fetches the opcode at the program counter, and advances it.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	value, err := cpu.ReadMemory(cpu.counter)
	if err != nil {
		return
	}
	code = Code(value)

	err = cpu.SetCounter(cpu.counter + 1)
	if err != nil {
		return
	}

	return
}

// Tick executes a single instruction cycle.
// Returns ErrHalt once a halt instruction has executed.
func (cpu *Cpu) Tick() (err error) {
	here := cpu.counter

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	inst, err := code.Decode()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%02d: %03d %v", here, int(code), inst)
	}

	err = cpu.Execute(inst)

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrHalt) {
			err = fmt.Errorf("%v: %w", inst, err)
		}
	}()

	switch inst.Op {
	case OP_ADD, OP_SUB:
		var value int
		value, err = cpu.ReadMemory(inst.Addr)
		if err != nil {
			return
		}
		if inst.Op == OP_SUB {
			value = -value
		}
		result := cpu.Signed() + value
		err = cpu.SetAccumulator(max(result, -result))
		if err != nil {
			return
		}
		cpu.SetMinus(result < 0)
	case OP_STA:
		// Only the magnitude is stored.
		err = cpu.WriteMemory(inst.Addr, cpu.accumulator)
	case OP_LDA:
		var value int
		value, err = cpu.ReadMemory(inst.Addr)
		if err != nil {
			return
		}
		err = cpu.SetAccumulator(value)
		if err != nil {
			return
		}
		cpu.SetMinus(false)
	case OP_BRA:
		err = cpu.SetCounter(inst.Addr)
	case OP_BRZ:
		if cpu.accumulator == 0 {
			err = cpu.SetCounter(inst.Addr)
		}
	case OP_BRP:
		if !cpu.minus {
			err = cpu.SetCounter(inst.Addr)
		}
	case OP_INP:
		if cpu.channel == nil {
			err = ErrChannelInvalid
			return
		}
		var value int
		value, err = cpu.channel.Receive()
		if err != nil {
			return
		}
		err = cpu.SetAccumulator(value)
	case OP_OUT:
		if cpu.channel == nil {
			err = ErrChannelInvalid
			return
		}
		err = cpu.channel.Send(cpu.accumulator)
	case OP_HLT:
		err = ErrHalt
	default:
		err = ErrOpcode(MakeCode(inst.Op, inst.Addr))
	}

	return
}
