// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"strings"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
// LineNo is 0-based, or -1 if the address has no source line.
type ErrRuntime struct {
	Addr   int
	LineNo int
	Line   []string
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo < 0 {
		return f("address %02d: %v", err.Addr, err.Err)
	}
	return f("line %d '%v': %v", err.LineNo+1, strings.Join(err.Line, " "), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
