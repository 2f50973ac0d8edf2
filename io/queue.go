// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"slices"
)

// Queue is an in-memory channel.
// Receive consumes Input in order; Send appends to Output.
type Queue struct {
	Input  []int
	Output []int

	readIndex int
}

var _ Channel = (*Queue)(nil)

// NewQueue creates a queue holding the given inputs.
func NewQueue(inputs ...int) (qc *Queue) {
	qc = &Queue{
		Input: slices.Clone(inputs),
	}
	return
}

// Rewind restarts the input and discards all output.
func (qc *Queue) Rewind() {
	qc.readIndex = 0
	qc.Output = nil
}

// Receive returns the next queued input.
func (qc *Queue) Receive() (value int, err error) {
	if qc.readIndex >= len(qc.Input) {
		err = ErrTapeEmpty
		return
	}

	value = qc.Input[qc.readIndex]
	qc.readIndex++

	return
}

// Send records value.
func (qc *Queue) Send(value int) (err error) {
	qc.Output = append(qc.Output, value)
	return
}

// Pending returns the number of unread inputs.
func (qc *Queue) Pending() int {
	return len(qc.Input) - qc.readIndex
}
