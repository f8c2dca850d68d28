// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator ties the processor core to the device fabric and runs
// assembled programs to completion.
package emulator

import (
	stdio "io"
	"iter"

	"github.com/nanoproc/nanoproc/cpu"
	"github.com/nanoproc/nanoproc/internal"
	"github.com/nanoproc/nanoproc/io"
)

// Emulator state. CPU + fabric + the program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Fabric *io.Fabric // Memory, mode register and GPIO.

	Run bool // Run level presented to the core, sampled in T0.

	fetchA cpu.Word // Fetch address of the instruction in flight.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.New(),
		Program: &cpu.Program{},
		Fabric:  io.NewFabric(),
		Run:     true,
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		emu.Fabric.Defines(),
	)
}

// Assemble parses assembly text into the program listing. The emulator's
// defines are predefined, so sources can name the device bases and opcode
// values symbolically.
func (emu *Emulator) Assemble(in stdio.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for attr, val := range emu.Defines() {
		asm.Predefine(attr, val)
	}

	prog, err := asm.Parse(in)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset restores power-on state and loads the program image into memory.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Fabric.Reset()
	emu.Fabric.Memory.Load(emu.Program.Image())
	emu.fetchA = 0
}

// LineNo returns the source line number of the instruction in flight.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.fetchA)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single clock cycle of the whole system: the core ticks
// on the values the fabric latched last cycle, then the fabric steps on
// the address, data and write strobe the core presented this cycle.
//
// halted reports that an instruction completed with the program counter
// back at its own fetch address. A jump-to-self makes no further progress,
// so it is the idle loop that ends a program.
func (emu *Emulator) Tick() (halted bool, err error) {
	c := emu.Cpu
	c.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Tick: c.Ticks, LineNo: emu.LineNo(), Err: err}
		}
	}()

	addr := c.Addr
	dout := c.Dout
	write := c.WriteOut

	if c.State == cpu.T0 {
		emu.fetchA = c.PC()
	}

	c.Din = emu.Fabric.Din()
	c.Run = emu.Run

	done := c.Done()

	err = c.Tick()
	if err != nil {
		return
	}

	emu.Fabric.Step(addr, dout, write)

	halted = done && c.PC() == emu.fetchA

	return
}

// RunProgram resets the emulator and ticks until the program halts,
// returning the total cycles consumed. Exceeding maxTicks is an error, so
// a program that never reaches its idle loop cannot spin forever.
func (emu *Emulator) RunProgram(maxTicks int) (ticks int, err error) {
	emu.Reset()

	for {
		var halted bool
		halted, err = emu.Tick()
		ticks = emu.Cpu.Ticks
		if err != nil {
			return
		}
		if halted {
			return
		}
		if ticks >= maxTicks {
			err = &ErrRuntime{Tick: ticks, LineNo: emu.LineNo(), Err: ErrTickLimit}
			return
		}
	}
}
