// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io provides the memory-mapped device fabric for the NanoProcessor
// emulator. The 9-bit address space is split by its top two bits into the
// 128-word memory, the pin-direction mode register, the GPIO data register,
// and an unpopulated region.
//
// Reads through the fabric are registered: the value read at an address is
// presented on the data-in port one cycle after the address is presented.
// Writes complete in the same cycle the write strobe is asserted.
package io

import (
	"iter"
)

// Word is the 9-bit architectural word, stored in the low bits of a uint16.
type Word uint16

const (
	// WORD_MASK masks a value to the 9-bit word width.
	WORD_MASK = Word(0x1ff)

	// MEM_WORDS is the number of words in the memory device.
	MEM_WORDS = 128

	// DEVICE_SHIFT is the bit position of the device-select field.
	DEVICE_SHIFT = 7
	// DEVICE_MASK masks the device-select bits of an address.
	DEVICE_MASK = Word(0x3 << DEVICE_SHIFT)
	// OFFSET_MASK masks the in-device offset bits of an address.
	OFFSET_MASK = Word((1 << DEVICE_SHIFT) - 1)

	// DEVICE_MEMORY is the base address of the memory device.
	DEVICE_MEMORY = Word(0 << DEVICE_SHIFT)
	// DEVICE_MODE is the base address of the pin-direction mode register.
	DEVICE_MODE = Word(1 << DEVICE_SHIFT)
	// DEVICE_GPIO is the base address of the GPIO data register.
	DEVICE_GPIO = Word(2 << DEVICE_SHIFT)
	// DEVICE_NONE is the base address of the unpopulated region.
	DEVICE_NONE = Word(3 << DEVICE_SHIFT)
)

// Device is a word-addressable target on the fabric. Offsets are the low
// seven address bits; devices that are a single register ignore them.
type Device interface {
	// Reset restores the device's power-on state.
	Reset()
	// Read returns the value at an offset. Combinational on the device
	// side; the one-cycle latency lives in the fabric's read port.
	Read(offset Word) Word
	// Write stores a value at an offset in the same cycle.
	Write(offset Word, value Word)
	// Defines returns the device constants exported to the assembler.
	Defines() iter.Seq2[string, string]
}
