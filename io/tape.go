// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/lmc/translate"
)

// Tape provides line-oriented decimal I/O.
// Each Receive consumes one line of Input, and each Send writes one line
// to Output.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt bool // If set, writes "Input: " before reads and "Output: " before values.

	scanner *bufio.Scanner
	source  io.Reader
}

var _ Channel = (*Tape)(nil)

// Rewind drops any buffered input.
func (tc *Tape) Rewind() {
	tc.scanner = nil
	tc.source = nil
}

// Receive reads the next line and parses it as an integer.
func (tc *Tape) Receive() (value int, err error) {
	if tc.Input == nil {
		err = ErrTapeMissing
		return
	}

	if tc.Prompt && tc.Output != nil {
		translate.To(tc.Output, "Input: ")
	}

	// A new Input gets a new scanner.
	if tc.scanner == nil || tc.source != tc.Input {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.source = tc.Input
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrTapeEmpty
		}
		return
	}

	text := strings.TrimSpace(tc.scanner.Text())
	value, err = strconv.Atoi(text)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	return
}

// Send writes value as a decimal line.
func (tc *Tape) Send(value int) (err error) {
	if tc.Output == nil {
		err = ErrTapeMissing
		return
	}

	if tc.Prompt {
		_, err = translate.To(tc.Output, "Output: ")
		if err != nil {
			return
		}
	}

	_, err = io.WriteString(tc.Output, strconv.Itoa(value)+"\n")

	return
}
