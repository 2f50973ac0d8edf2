// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io provides the I/O channels used by the INP and OUT instructions
// of the Little Man Computer.
//
// A Tape reads and writes decimal lines on byte streams, and a Queue holds
// inputs and outputs in memory.
package io

// Channel defines the interface for the machine's I/O channel.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns the next input value, blocking if needed.
	Receive() (value int, err error)
	// Send writes a single value to the channel.
	Send(value int) error
}
