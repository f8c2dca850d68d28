// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFabricDecode(t *testing.T) {
	assert := assert.New(t)

	fabric := NewFabric()

	assert.Equal(&fabric.Memory, fabric.Device(0x000))
	assert.Equal(&fabric.Memory, fabric.Device(0x07f))
	assert.Equal(&fabric.Mode, fabric.Device(DEVICE_MODE))
	assert.Equal(&fabric.Gpio, fabric.Device(DEVICE_GPIO))
	assert.Nil(fabric.Device(DEVICE_NONE))
	assert.Nil(fabric.Device(0x1ff))
}

func TestFabricReadLatency(t *testing.T) {
	assert := assert.New(t)

	fabric := NewFabric()
	fabric.Memory.Write(5, 0x123)

	// The read value appears one step after the address.
	assert.Equal(Word(0), fabric.Din())
	fabric.Step(5, 0, false)
	assert.Equal(Word(0x123), fabric.Din())

	fabric.Step(6, 0, false)
	assert.Equal(Word(0), fabric.Din())
}

func TestFabricWrite(t *testing.T) {
	assert := assert.New(t)

	fabric := NewFabric()

	// A write lands in the same step; its read-back follows a step later.
	fabric.Step(10, 0x0aa, true)
	assert.Equal(Word(0x0aa), fabric.Memory.Read(10))
	assert.Equal(Word(0x0aa), fabric.Din())
}

func TestFabricUnpopulatedRegion(t *testing.T) {
	assert := assert.New(t)

	fabric := NewFabric()
	fabric.Memory.Write(0, 0x155)

	// Writes to region 3 are dropped and its reads latch 0.
	fabric.Step(DEVICE_NONE, 0x1ff, true)
	assert.Equal(Word(0), fabric.Din())
	assert.Equal(Word(0x155), fabric.Memory.Read(0))
	assert.Equal(Word(0), fabric.Mode.Direction)
}

func TestFabricGpio(t *testing.T) {
	assert := assert.New(t)

	fabric := NewFabric()

	// Set the low bit to output through the mode register, then drive it.
	fabric.Step(DEVICE_MODE, 0x001, true)
	fabric.Step(DEVICE_GPIO, 0x001, true)

	assert.Equal(Word(0x001), fabric.Mode.Direction)
	assert.Equal(Word(0x1ff), fabric.Din())

	// The external pins dominate the input bits.
	fabric.Gpio.Pins = 0x100
	fabric.Step(DEVICE_GPIO, 0, false)
	assert.Equal(Word(0x101), fabric.Din())
}

func TestFabricReset(t *testing.T) {
	assert := assert.New(t)

	fabric := NewFabric()
	fabric.Step(0x005, 0x123, true)
	fabric.Step(DEVICE_MODE, 0x00f, true)

	fabric.Reset()
	assert.Equal(Word(0), fabric.Din())
	assert.Equal(Word(0), fabric.Memory.Read(5))
	assert.Equal(Word(0), fabric.Mode.Direction)
	assert.Equal(Word(0x1ff), fabric.Gpio.Read(0))
}

func TestFabricDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for attr, val := range NewFabric().Defines() {
		defines[attr] = val
	}

	assert.Equal("0x000", defines["DEVICE_MEMORY"])
	assert.Equal("0x080", defines["DEVICE_MODE"])
	assert.Equal("0x100", defines["DEVICE_GPIO"])
	assert.Equal("0x180", defines["DEVICE_NONE"])
	assert.Equal("128", defines["MEM_WORDS"])
}
