// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"io"
	"log"
	"maps"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Mnemonic describes how a source mnemonic assembles.
type Mnemonic struct {
	Make  func(args ...int) Code  // Produces the opcode for validated arguments.
	Check func(args ...int) error // Validates the resolved arguments.
}

// checkRange returns a checker for a single required argument in [lo, hi].
func checkRange(lo, hi int) func(args ...int) error {
	return func(args ...int) error {
		if len(args) != 1 {
			return ErrOpcodeValueMissing
		}
		if args[0] < lo || args[0] > hi {
			return ErrOpcodeArgInvalid
		}
		return nil
	}
}

// checkNone accepts only an absent argument.
func checkNone(args ...int) error {
	if len(args) != 0 {
		return ErrOpcodeArgInvalid
	}
	return nil
}

// checkData accepts an optional literal cell value.
func checkData(args ...int) error {
	if len(args) == 0 {
		return nil
	}
	return checkRange(0, CODE_MAX)(args...)
}

// makeAddressed returns a maker for an addressed operation.
func makeAddressed(op CodeOp) func(args ...int) Code {
	return func(args ...int) Code {
		return MakeCode(op, args[0])
	}
}

// makeData produces a literal cell, defaulting to 0.
func makeData(args ...int) Code {
	if len(args) == 0 {
		return MakeCodeData(0)
	}
	return MakeCodeData(args[0])
}

var checkAddress = checkRange(0, ADDRESS_MAX)

// mnemonicMap maps source mnemonics to their assembly rules.
var mnemonicMap = map[string]Mnemonic{
	"ADD": {makeAddressed(OP_ADD), checkAddress},
	"SUB": {makeAddressed(OP_SUB), checkAddress},
	"STA": {makeAddressed(OP_STA), checkAddress},
	"LDA": {makeAddressed(OP_LDA), checkAddress},
	"BRA": {makeAddressed(OP_BRA), checkAddress},
	"BRZ": {makeAddressed(OP_BRZ), checkAddress},
	"BRP": {makeAddressed(OP_BRP), checkAddress},
	"INP": {func(...int) Code { return CODE_INP }, checkNone},
	"OUT": {func(...int) Code { return CODE_OUT }, checkNone},
	"HLT": {func(...int) Code { return CODE_HLT }, checkNone},
	"DAT": {makeData, checkData},
}

// IsMnemonic returns true if word is an instruction mnemonic.
func IsMnemonic(word string) bool {
	_, ok := mnemonicMap[word]
	return ok
}

// Assembler is a two pass assembler for the Little Man Computer.
// The first pass binds labels to line numbers, the second pass generates
// one opcode per line.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Label   map[string]int // Map of labels to line numbers.
}

// ResolveLabels removes a leading label from each line, recording the
// label's 0-based line number. A line's first token is a label when it
// is not a mnemonic.
func (asm *Assembler) ResolveLabels(lines [][]string) (stripped [][]string, err error) {
	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)

	stripped = make([][]string, len(lines))

	for lineno, words := range lines {
		stripped[lineno] = words
		if len(words) == 0 || IsMnemonic(words[0]) {
			continue
		}

		label := words[0]
		_, ok := asm.Label[label]
		if ok {
			err = &ErrSyntax{LineNo: lineno, Line: strings.Join(words, " "), Err: ErrLabelDuplicate}
			return
		}

		if asm.Verbose {
			log.Printf("%v: label %v", lineno, label)
		}

		asm.Label[label] = lineno
		stripped[lineno] = words[1:]
	}

	return
}

// isNumber returns true if word is an unsigned decimal literal.
func isNumber(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// parenEval does compile-time $(...) evaluations, with all labels defined.
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, line := range asm.Label {
		pred[key] = starlark.MakeInt(line)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// resolveArg converts an argument word to its value.
func (asm *Assembler) resolveArg(word string) (value int, err error) {
	switch {
	case isNumber(word):
		value, err = strconv.Atoi(word)
		if err != nil {
			// Too large for an int is certainly out of range.
			err = ErrOpcodeArgInvalid
		}
	case strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")"):
		value, err = asm.parenEval(word[2 : len(word)-1])
	default:
		var ok bool
		value, ok = asm.Label[word]
		if !ok {
			err = ErrLabelMissing(word)
		}
	}

	return
}

// generateLine assembles a single label-free line.
func (asm *Assembler) generateLine(words []string) (code Code, err error) {
	if len(words) == 0 {
		return
	}

	if len(words) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	mnem, ok := mnemonicMap[words[0]]
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	var args []int
	if len(words) == 2 {
		var arg int
		arg, err = asm.resolveArg(words[1])
		if err != nil {
			return
		}
		args = append(args, arg)
	}

	err = mnem.Check(args...)
	if err != nil {
		return
	}

	code = mnem.Make(args...)

	return
}

// Generate translates label-free lines into opcodes, one per line.
// Empty lines generate 0.
func (asm *Assembler) Generate(lines [][]string) (codes []Code, err error) {
	codes = make([]Code, 0, len(lines))

	for lineno, words := range lines {
		var code Code
		code, err = asm.generateLine(words)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: strings.Join(words, " "), Err: err}
			codes = nil
			return
		}

		if asm.Verbose && len(words) > 0 {
			log.Printf("%v: %03d %v", lineno, int(code), words)
		}

		codes = append(codes, code)
	}

	return
}

// Assemble runs both passes over tokenized lines.
func (asm *Assembler) Assemble(lines [][]string) (prog *Program, err error) {
	stripped, err := asm.ResolveLabels(lines)
	if err != nil {
		return
	}

	codes, err := asm.Generate(stripped)
	if err != nil {
		return
	}

	prog = &Program{
		Lines:  make([]Line, len(lines)),
		Labels: maps.Clone(asm.Label),
	}

	for lineno, words := range stripped {
		line := Line{
			LineNo: lineno,
			Words:  words,
			Code:   codes[lineno],
		}
		if len(words) != len(lines[lineno]) {
			line.Label = lines[lineno][0]
		}
		prog.Lines[lineno] = line
	}

	return
}

// Parse reads program text and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	lines, err := LoadProgram(input)
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}
