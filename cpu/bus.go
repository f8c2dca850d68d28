// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// BusSource identifies the single driver of the shared 9-bit bus for one
// cycle. The zero value is SRC_DIN: when no drive enable asserts, the
// multiplexer's default case routes external data-in onto the bus. That
// don't-care comes straight from the hardware and is kept, not flagged.
type BusSource int

//go:generate go tool stringer -linecomment -type=BusSource
const (
	SRC_DIN = BusSource(0) // din
	SRC_R0  = BusSource(1) // r0
	SRC_R1  = BusSource(2) // r1
	SRC_R2  = BusSource(3) // r2
	SRC_R3  = BusSource(4) // r3
	SRC_R4  = BusSource(5) // r4
	SRC_R5  = BusSource(6) // r5
	SRC_R6  = BusSource(7) // r6
	SRC_PC  = BusSource(8) // pc
	SRC_G   = BusSource(9) // g
)

// Source collapses the one-hot drive enables to a single bus source.
// More than one asserted driver is a control-table bug and returns
// ErrBusContention; the control table guarantees it never happens, so the
// simulator surfaces it instead of resolving it.
func (sig Signals) Source() (src BusSource, err error) {
	drivers := 0

	if sig.DinOut {
		src = SRC_DIN
		drivers += 1
	}
	for reg := REG_R0; reg <= REG_PC; reg++ {
		if sig.ROut[reg] {
			src = SRC_R0 + BusSource(reg)
			drivers += 1
		}
	}
	if sig.GOut {
		src = SRC_G
		drivers += 1
	}

	if drivers > 1 {
		err = ErrBusContention
	}

	return
}

// busValue arbitrates the bus: the selected source's value is the bus value
// for this cycle.
func (c *Cpu) busValue(src BusSource) (value Word) {
	switch src {
	case SRC_DIN:
		value = c.Din & WORD_MASK
	case SRC_R0, SRC_R1, SRC_R2, SRC_R3, SRC_R4, SRC_R5, SRC_R6, SRC_PC:
		value = c.Reg[Reg(src-SRC_R0)]
	case SRC_G:
		value = c.G
	}

	return
}
