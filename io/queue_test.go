// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	assert := assert.New(t)

	inputs := []int{3, 1, 4}
	qc := NewQueue(inputs...)
	inputs[0] = 0
	assert.Equal(3, qc.Pending())

	for _, expected := range []int{3, 1, 4} {
		value, err := qc.Receive()
		assert.NoError(err)
		assert.Equal(expected, value)
	}
	assert.Equal(0, qc.Pending())

	_, err := qc.Receive()
	assert.True(errors.Is(err, ErrTapeEmpty))

	assert.NoError(qc.Send(10))
	assert.NoError(qc.Send(20))
	assert.Equal([]int{10, 20}, qc.Output)

	qc.Rewind()
	assert.Equal(3, qc.Pending())
	assert.Nil(qc.Output)
}
