// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"OP_MV":   fmt.Sprintf("%v", int(OP_MV)),
	"OP_MVI":  fmt.Sprintf("%v", int(OP_MVI)),
	"OP_ADD":  fmt.Sprintf("%v", int(OP_ADD)),
	"OP_SUB":  fmt.Sprintf("%v", int(OP_SUB)),
	"OP_LD":   fmt.Sprintf("%v", int(OP_LD)),
	"OP_ST":   fmt.Sprintf("%v", int(OP_ST)),
	"OP_MVNZ": fmt.Sprintf("%v", int(OP_MVNZ)),
	"OP_AND":  fmt.Sprintf("%v", int(OP_AND)),
}

// Cpu is the cycle-accurate model of the NanoProcessor core: the control
// unit FSM plus the datapath it drives. All fields are architectural state
// except Din and Run, which the harness injects each cycle, and Bus/Ticks,
// which exist for observability.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Reg [8]Word // General registers r0..r6; Reg[REG_PC] is the counter.
	IR  Word    // Instruction register, loaded during fetch.
	A   Word    // ALU left operand buffer.
	G   Word    // ALU result buffer; G == 0 is the zero flag.

	Addr     Word // Address presented to the fabric.
	Dout     Word // Data presented to the fabric for writes.
	WriteOut bool // Write flip-flop, high for one cycle per store.

	State State // Control unit state.

	Din Word // External data-in, injected before each Tick.
	Run bool // External run level, sampled only in T0.

	Bus   Word // Bus value of the most recent cycle.
	Ticks int  // Cycles since reset.
}

// New creates a CPU in its reset state.
func New() (c *Cpu) {
	c = &Cpu{}
	c.Reset()

	return
}

// Defines for the cpu.
func (c *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset forces the FSM to T0 and zeroes every architectural register,
// overriding any in-flight update. The external Din and Run inputs belong
// to the harness and are left alone.
func (c *Cpu) Reset() {
	clear(c.Reg[:])
	c.IR = 0
	c.A = 0
	c.G = 0
	c.Addr = 0
	c.Dout = 0
	c.WriteOut = false
	c.State = T0
	c.Bus = 0
	c.Ticks = 0
}

// PC returns the program counter.
func (c *Cpu) PC() Word {
	return c.Reg[REG_PC]
}

// ZeroG returns the derived zero flag: true iff the result buffer holds 0.
// Only well-defined immediately after an add, sub, or and; mvnz issued at
// any other point reads whatever G happens to hold.
func (c *Cpu) ZeroG() bool {
	return c.G == 0
}

// Decode decodes the instruction register.
func (c *Cpu) Decode() (op Op, x Reg, y Reg) {
	return Decode(c.IR)
}

// Signals computes this cycle's control signals. Pure: recomputed from the
// FSM state, the decoded instruction, and the zero flag every call.
func (c *Cpu) Signals() Signals {
	op, x, y := c.Decode()
	return Control(c.State, op, x, y, c.ZeroG())
}

// Done reports whether the current cycle is the last of the instruction.
func (c *Cpu) Done() bool {
	return c.Signals().Done
}

// String returns the current CPU state as a string.
func (c *Cpu) String() (text string) {
	for reg := REG_R0; reg <= REG_PC; reg++ {
		text += fmt.Sprintf("%5v: %03x\n", reg, uint16(c.Reg[reg]))
	}
	text += fmt.Sprintf("   ir: %03x (%v)\n", uint16(c.IR), Disassemble(c.IR))
	text += fmt.Sprintf("    a: %03x\n", uint16(c.A))
	text += fmt.Sprintf("    g: %03x zero:%v\n", uint16(c.G), c.ZeroG())
	text += fmt.Sprintf(" addr: %03x dout: %03x write:%v\n",
		uint16(c.Addr), uint16(c.Dout), c.WriteOut)
	text += fmt.Sprintf("state: %v\n", c.State)

	return
}

// Tick advances the model by one clock edge: evaluate all combinational
// outputs from the current state, then commit every registered update
// atomically from the pre-edge values, then advance the FSM.
func (c *Cpu) Tick() (err error) {
	sig := c.Signals()

	src, err := sig.Source()
	if err != nil {
		// Contention never arises from the control table; leave the
		// state untouched so the harness can inspect it.
		return
	}

	bus := c.busValue(src)

	if c.Verbose {
		log.Printf("cpu: %v %-14v bus:%03x <- %v", c.State, Disassemble(c.IR), uint16(bus), src)
	}

	// ALU output from the pre-edge operand buffer.
	alu := Alu(sig.AluOp, c.A, bus)

	for reg := REG_R0; reg <= REG_PC; reg++ {
		if sig.RIn[reg] {
			c.Reg[reg] = bus
		}
	}
	if sig.IncrPC {
		// Never coincides with a PC load; the control table times them
		// into different states.
		c.Reg[REG_PC] = (c.Reg[REG_PC] + 1) & WORD_MASK
	}
	if sig.IRIn {
		c.IR = bus
	}
	if sig.AIn {
		c.A = bus
	}
	if sig.GIn {
		c.G = alu
	}
	if sig.AddrIn {
		c.Addr = bus
	}
	if sig.DoutIn {
		c.Dout = bus
	}
	c.WriteOut = sig.Write

	c.Bus = bus
	c.State = NextState(c.State, c.Run, sig.Done)
	c.Ticks += 1

	return
}
