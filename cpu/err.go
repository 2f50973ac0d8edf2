// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt            = errors.New(f("halt"))
	ErrStateInvalid    = errors.New(f("invalid machine operation"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrChannelInvalid  = errors.New(f("channel invalid"))

	// Assembler errors
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("too many tokens"))
	ErrOpcodeValueMissing = errors.New(f("wrong number of arguments"))
	ErrOpcodeArgInvalid   = errors.New(f("invalid argument"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrLabelMissing is an argument that is neither a number nor a known label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("undefined label %v", string(el))
}

// ErrOpcode is a value that does not decode to an instruction.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("invalid opcode %03d", int(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax locates an assembly error. LineNo is 0-based.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("syntax error on line %d '%v': %v", err.LineNo+1, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
