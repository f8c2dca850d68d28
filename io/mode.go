// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"iter"
	"maps"
)

// ModeRegister holds the per-pin GPIO direction bits: 0 selects input
// (high impedance, externally driven), 1 selects output. It is a single
// register, so the low seven address bits are ignored. The register is
// write-only from the processor's point of view; reads return 0.
type ModeRegister struct {
	Direction Word
}

var _ Device = (*ModeRegister)(nil)

// Defines returns an iter of defines for the device.
func (mode *ModeRegister) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"DEVICE_MODE": "0x080",
	})
}

// Reset selects input direction for every pin.
func (mode *ModeRegister) Reset() {
	mode.Direction = 0
}

func (mode *ModeRegister) Read(offset Word) Word {
	return 0
}

func (mode *ModeRegister) Write(offset Word, value Word) {
	mode.Direction = value & WORD_MASK
}
