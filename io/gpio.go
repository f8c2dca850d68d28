// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"iter"
	"maps"
)

// Gpio is the GPIO data register. Direction comes from the shared
// ModeRegister: pins with mode 1 drive the level last written here, pins
// with mode 0 float and take the externally injected level. Reading returns
// the physical pin levels regardless of direction.
type Gpio struct {
	Mode *ModeRegister

	// Driven holds the last written level for each output pin.
	Driven Word
	// Pins holds the externally driven level of each input pin. Test
	// harnesses set this between ticks to model the outside world.
	Pins Word
}

var _ Device = (*Gpio)(nil)

// Defines returns an iter of defines for the device.
func (gpio *Gpio) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"DEVICE_GPIO": "0x100",
	})
}

// Reset clears the driven levels and idles the input pins high, the level
// a disconnected pin with a weak pull-up settles to.
func (gpio *Gpio) Reset() {
	gpio.Driven = 0
	gpio.Pins = WORD_MASK
}

// Read returns the physical pin levels.
func (gpio *Gpio) Read(offset Word) Word {
	dir := gpio.Mode.Direction
	return (gpio.Driven & dir) | (gpio.Pins &^ dir)
}

// Write updates the driven level of each output pin. Pins in input mode
// keep their previous driven level.
func (gpio *Gpio) Write(offset Word, value Word) {
	dir := gpio.Mode.Direction
	gpio.Driven = (gpio.Driven &^ dir) | (value & dir & WORD_MASK)
}
