// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
)

func TestInterpret(t *testing.T) {
	assert := assert.New(t)

	queue := io.NewQueue(7)
	state, err := Interpret([][]string{{"INP"}, {"OUT"}, {"HLT"}}, queue, nil, 0)
	assert.NoError(err)
	assert.Equal([]int{7}, queue.Output)
	assert.Equal(7, state.Accumulator())
	assert.Equal(3, state.Counter())
}

func TestInterpretTape(t *testing.T) {
	assert := assert.New(t)

	input := bytes.NewBufferString("12\n30\n")
	output := &bytes.Buffer{}
	tape := &io.Tape{Input: input, Output: output}

	program := [][]string{
		{"INP"},
		{"STA", "X"},
		{"INP"},
		{"ADD", "X"},
		{"OUT"},
		{"HLT"},
		{"X", "DAT"},
	}

	state, err := Interpret(program, tape, nil, 0)
	assert.NoError(err)
	assert.Equal("42\n", output.String())
	line, ok := state.Label("X")
	assert.True(ok)
	assert.Equal(6, line)
}

func TestInterpretSyntaxErr(t *testing.T) {
	assert := assert.New(t)

	state, err := Interpret([][]string{{"ADD", "100"}}, nil, nil, 0)
	assert.Nil(state)
	var se *cpu.ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(0, se.LineNo)
}

func TestInterpretDataHalts(t *testing.T) {
	assert := assert.New(t)

	// A data cell below 100 executed as code halts the machine.
	queue := io.NewQueue()
	state, err := Interpret([][]string{{"LDA", "2"}, {"DAT", "23"}, {"DAT", "5"}}, queue, nil, 0)
	assert.NoError(err)
	assert.Equal(5, state.Accumulator())
	assert.Equal(2, state.Counter())
}

func TestInterpretStepLimit(t *testing.T) {
	assert := assert.New(t)

	state, err := Interpret([][]string{{"L", "BRA", "L"}}, nil, nil, 100)
	assert.True(errors.Is(err, ErrStepLimit))
	assert.NotNil(state)
}
