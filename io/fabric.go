// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"iter"
	"maps"

	"github.com/nanoproc/nanoproc/internal"
)

// Fabric is the address decode plus the registered read port. The top two
// address bits select the device; region 3 has no device, so its reads
// latch 0 and its writes are dropped.
type Fabric struct {
	Memory Memory
	Mode   ModeRegister
	Gpio   Gpio

	din Word
}

// NewFabric creates a fabric with the GPIO direction wired to the mode
// register.
func NewFabric() (fabric *Fabric) {
	fabric = &Fabric{}
	fabric.Gpio.Mode = &fabric.Mode
	fabric.Reset()

	return
}

// Defines returns an iter of defines for all fabric devices.
func (fabric *Fabric) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		maps.All(map[string]string{
			"DEVICE_MEMORY": "0x000",
			"DEVICE_NONE":   "0x180",
		}),
		fabric.Memory.Defines(),
		fabric.Mode.Defines(),
		fabric.Gpio.Defines(),
	)
}

// Reset resets every device and clears the read port.
func (fabric *Fabric) Reset() {
	fabric.Memory.Reset()
	fabric.Mode.Reset()
	fabric.Gpio.Reset()
	fabric.din = 0
}

// Device decodes an address to its target device, or nil for region 3.
func (fabric *Fabric) Device(addr Word) (dev Device) {
	switch addr & DEVICE_MASK {
	case DEVICE_MEMORY:
		dev = &fabric.Memory
	case DEVICE_MODE:
		dev = &fabric.Mode
	case DEVICE_GPIO:
		dev = &fabric.Gpio
	}

	return
}

// Din returns the registered read value for the address presented on the
// previous cycle.
func (fabric *Fabric) Din() Word {
	return fabric.din
}

// Step advances the fabric one clock cycle with the address, data-out, and
// write strobe the processor presented during that cycle. A write commits
// immediately; the read of the same address is latched for the next cycle.
func (fabric *Fabric) Step(addr Word, dout Word, write bool) {
	dev := fabric.Device(addr)
	if dev == nil {
		fabric.din = 0
		return
	}

	if write {
		dev.Write(addr&OFFSET_MASK, dout)
	}
	fabric.din = dev.Read(addr & OFFSET_MASK)
}
