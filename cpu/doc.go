// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements the processor and assembler for the Little Man
// Computer.
//
// The CPU consists of a program counter, an accumulator holding a magnitude
// in [0, 999] with a separate minus flag, and 100 decimal memory cells.
// Opcodes are decimal: the hundreds digit selects the operation and the
// trailing two digits are the operand address.
//
// The assembler translates mnemonics with optional labels in two passes,
// and supports compile-time $(...) expression evaluation over labels.
package cpu
