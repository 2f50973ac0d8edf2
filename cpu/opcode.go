// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// CodeOp is a decoded operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HLT = CodeOp(0) // HLT
	OP_ADD = CodeOp(1) // ADD
	OP_SUB = CodeOp(2) // SUB
	OP_STA = CodeOp(3) // STA
	OP_LDA = CodeOp(4) // LDA
	OP_BRA = CodeOp(5) // BRA
	OP_BRZ = CodeOp(6) // BRZ
	OP_BRP = CodeOp(7) // BRP
	OP_INP = CodeOp(8) // INP
	OP_OUT = CodeOp(9) // OUT
)

const (
	CODE_MAX     = 999 // Largest encodable opcode.
	CODE_INP     = 901 // Read input into the accumulator.
	CODE_OUT     = 902 // Write the accumulator to output.
	CODE_HLT     = 0   // Stop execution.
	CODE_IO      = 9   // Hundreds digit of the I/O opcodes.
	ADDRESS_MAX  = 99  // Largest operand address.
	CODE_DIGITS  = 3   // Digits in an addressed opcode.
	CLASS_RADIX  = 100 // Weight of the class digit.
)

// classEntry binds an opcode class (hundreds digit) to its operation.
type classEntry struct {
	Class int
	Op    CodeOp
}

// classTable holds every addressed operation.
var classTable = []classEntry{
	{1, OP_ADD},
	{2, OP_SUB},
	{3, OP_STA},
	{5, OP_LDA},
	{6, OP_BRA},
	{7, OP_BRZ},
	{8, OP_BRP},
}

// Addressed returns true if the operation takes an address operand.
func (op CodeOp) Addressed() bool {
	return op >= OP_ADD && op <= OP_BRP
}

// Class returns the hundreds digit an addressed operation encodes to,
// or -1 if the operation takes no address.
func (op CodeOp) Class() int {
	for _, entry := range classTable {
		if entry.Op == op {
			return entry.Class
		}
	}
	return -1
}

// Instruction is a decoded opcode.
// Addr is only meaningful when Op.Addressed() is true.
type Instruction struct {
	Op   CodeOp
	Addr int
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	if inst.Op.Addressed() {
		return fmt.Sprintf("%v %02d", inst.Op, inst.Addr)
	}
	return inst.Op.String()
}

// Code is a numeric opcode as stored in memory.
type Code int

// MakeCode creates the opcode for an operation.
// The address is ignored for operations that do not take one.
func MakeCode(op CodeOp, addr int) Code {
	switch op {
	case OP_INP:
		return CODE_INP
	case OP_OUT:
		return CODE_OUT
	case OP_HLT:
		return CODE_HLT
	}

	return Code(op.Class()*CLASS_RADIX + addr)
}

// MakeCodeData creates a literal data cell.
func MakeCodeData(value int) Code {
	return Code(value)
}

// Digits returns the number of significant decimal digits in the opcode.
func (code Code) Digits() int {
	return len(fmt.Sprintf("%d", int(code)))
}

// Class returns the hundreds digit of the opcode.
func (code Code) Class() int {
	return int(code) / CLASS_RADIX
}

// Operand returns the trailing two digits of the opcode.
func (code Code) Operand() int {
	return int(code) % CLASS_RADIX
}

// Decode reconstructs the instruction an opcode denotes.
//
// Any opcode of fewer than three digits is a halt, so a data cell of
// value 0 to 99 executed as code stops the machine.
func (code Code) Decode() (inst Instruction, err error) {
	if code < 0 || code > CODE_MAX {
		err = ErrOpcode(code)
		return
	}

	if code.Digits() < CODE_DIGITS {
		inst = Instruction{Op: OP_HLT}
		return
	}

	if code.Class() == CODE_IO {
		switch code {
		case CODE_INP:
			inst = Instruction{Op: OP_INP}
		case CODE_OUT:
			inst = Instruction{Op: OP_OUT}
		default:
			err = ErrOpcode(code)
		}
		return
	}

	var found []classEntry
	for _, entry := range classTable {
		if entry.Class == code.Class() {
			found = append(found, entry)
		}
	}
	if len(found) != 1 {
		err = ErrOpcode(code)
		return
	}

	inst = Instruction{Op: found[0].Op, Addr: code.Operand()}

	return
}

// String returns the disassembly of the opcode, or its value as data
// if it does not decode.
func (code Code) String() string {
	inst, err := code.Decode()
	if err != nil {
		return fmt.Sprintf("DAT %d", int(code))
	}
	if inst.Op == OP_HLT && code != CODE_HLT {
		return fmt.Sprintf("DAT %d", int(code))
	}
	return inst.String()
}
