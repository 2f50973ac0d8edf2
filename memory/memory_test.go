// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()

	for addr, value := range mem.Cells() {
		assert.Equal(0, value, addr)
	}

	assert.NoError(mem.Write(33, 11))
	value, err := mem.Read(33)
	assert.NoError(err)
	assert.Equal(11, value)

	assert.NoError(mem.Write(0, 0))
	assert.NoError(mem.Write(MEMORY_SIZE-1, CELL_MAX))
	value, err = mem.Read(MEMORY_SIZE - 1)
	assert.NoError(err)
	assert.Equal(CELL_MAX, value)

	mem.Reset()
	value, err = mem.Read(33)
	assert.NoError(err)
	assert.Equal(0, value)
}

func TestMemoryErr(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()

	table := [](struct {
		name  string
		addr  int
		value int
	}){
		{"too_big", 33, 1011},
		{"negative", 33, -17},
		{"addr_low", -1, 1},
		{"addr_high", MEMORY_SIZE, 1},
	}

	for _, entry := range table {
		err := mem.Write(entry.addr, entry.value)
		assert.Error(err, entry.name)
	}

	var ev ErrValue
	assert.True(errors.As(mem.Write(1, 1000), &ev))
	assert.Equal(ErrValue(1000), ev)

	var ea ErrAddress
	_, err := mem.Read(100)
	assert.True(errors.As(err, &ea))
	assert.Equal(ErrAddress(100), ea)

	value, err := mem.Read(33)
	assert.NoError(err)
	assert.Equal(0, value)
}

func TestMemoryWriteRange(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()

	opcodes := []int{111, 0, 901, 244}
	assert.NoError(mem.WriteRange(0, opcodes))
	assert.Equal(opcodes, mem.Slice(0, 4))

	// Whole range or nothing.
	err := mem.WriteRange(0, []int{1, 2, 1000, 4})
	assert.Error(err)
	assert.Equal(opcodes, mem.Slice(0, 4))

	err = mem.WriteRange(98, []int{1, 2, 3})
	assert.Error(err)
	assert.Equal([]int{0, 0}, mem.Slice(98, 100))

	assert.NoError(mem.WriteRange(50, nil))
}

func TestMemorySlice(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	assert.NoError(mem.WriteRange(97, []int{7, 8, 9}))

	assert.Equal([]int{7, 8, 9}, mem.Slice(97, 200))
	assert.Nil(mem.Slice(5, 5))
	assert.Equal(MEMORY_SIZE, len(mem.Slice(-5, MEMORY_SIZE)))

	// Slices are copies.
	cells := mem.Slice(97, 98)
	cells[0] = 500
	value, _ := mem.Read(97)
	assert.Equal(7, value)
}

func TestMemoryString(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	assert.NoError(mem.Write(1, 42))

	str := mem.String()
	assert.Equal("[0 42 0", str[:7])
	assert.Equal(']', rune(str[len(str)-1]))
}
