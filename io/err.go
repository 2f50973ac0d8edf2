// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrTapeEmpty   = errors.New(f("input exhausted"))
	ErrTapeMissing = errors.New(f("no tape attached"))
)

// ErrParseNumber reports an input line that is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("input '%v' is not a number", string(err))
}
