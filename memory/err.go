// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

// ErrAddress is returned for an address outside of the memory.
type ErrAddress int

func (err ErrAddress) Error() string {
	return f("address %d not in range 0 - %d", int(err), MEMORY_SIZE-1)
}

// ErrValue is returned for a cell value outside of [0, CELL_MAX].
type ErrValue int

func (err ErrValue) Error() string {
	return f("value %d not in range 0 - %d", int(err), CELL_MAX)
}
