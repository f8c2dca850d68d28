// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanoproc/nanoproc/cpu"
)

func assemble(t *testing.T, program []string) (emu *Emulator) {
	emu = NewEmulator()

	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestEmulatorMvi(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mvi r0 5",
		"halt",
	}

	emu := assemble(t, program)

	ticks, err := emu.RunProgram(100)
	assert.NoError(err)
	assert.Equal(6+6, ticks)
	assert.Equal(cpu.Word(5), emu.Cpu.Reg[cpu.REG_R0])
}

func TestEmulatorCountdown(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mvi r0 3",
		"mvi r1 -1",
		"mvi r2 loop",
		"loop: add r0 r1",
		"mvnz pc r2",
		"halt",
	}

	emu := assemble(t, program)

	ticks, err := emu.RunProgram(1000)
	assert.NoError(err)

	// Three six-cycle loads, three decrement laps of add plus mvnz,
	// and the six-cycle idle jump.
	assert.Equal(3*6+3*(6+4)+6, ticks)
	assert.Equal(cpu.Word(0), emu.Cpu.Reg[cpu.REG_R0])
	assert.Equal(cpu.Word(0x1ff), emu.Cpu.Reg[cpu.REG_R1])
	assert.Equal(cpu.Word(6), emu.Cpu.Reg[cpu.REG_R2])
}

func TestEmulatorMemory(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mvi r1 0x123",
		"mvi r2 100",
		"st r1 r2",
		"ld r3 r2",
		"halt",
	}

	emu := assemble(t, program)

	_, err := emu.RunProgram(100)
	assert.NoError(err)
	assert.Equal(cpu.Word(0x123), emu.Fabric.Memory.Read(100))
	assert.Equal(cpu.Word(0x123), emu.Cpu.Reg[cpu.REG_R3])
}

func TestEmulatorGpioOutput(t *testing.T) {
	assert := assert.New(t)

	// The device base addresses come from the emulator's defines.
	program := []string{
		"mvi r1 DEVICE_MODE",
		"mvi r2 0x00f",
		"st r2 r1",
		"mvi r1 DEVICE_GPIO",
		"mvi r2 5",
		"st r2 r1",
		"ld r3 r1",
		"halt",
	}

	emu := assemble(t, program)

	_, err := emu.RunProgram(1000)
	assert.NoError(err)

	assert.Equal(cpu.Word(0x00f), emu.Fabric.Mode.Direction)
	assert.Equal(cpu.Word(0x005), emu.Fabric.Gpio.Driven)

	// Outputs read back driven levels, inputs the idle-high pins.
	assert.Equal(cpu.Word(0x1f5), emu.Cpu.Reg[cpu.REG_R3])
}

func TestEmulatorGpioInput(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mvi r1 DEVICE_GPIO",
		"ld r3 r1",
		"halt",
	}

	emu := assemble(t, program)
	emu.Reset()

	// Drive the external pins after reset, before execution.
	emu.Fabric.Gpio.Pins = 0x0aa

	for {
		halted, err := emu.Tick()
		assert.NoError(err)
		if halted {
			break
		}
		if emu.Cpu.Ticks > 100 {
			t.Fatal("program never halted")
		}
	}

	assert.Equal(cpu.Word(0x0aa), emu.Cpu.Reg[cpu.REG_R3])
}

func TestEmulatorModeWriteOnly(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mvi r1 DEVICE_MODE",
		"mvi r2 0x0f0",
		"st r2 r1",
		"ld r3 r1",
		"halt",
	}

	emu := assemble(t, program)

	_, err := emu.RunProgram(1000)
	assert.NoError(err)
	assert.Equal(cpu.Word(0x0f0), emu.Fabric.Mode.Direction)
	assert.Equal(cpu.Word(0), emu.Cpu.Reg[cpu.REG_R3])
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	// Two jumps bouncing between each other never revisit their own
	// fetch address, so the program never halts.
	program := []string{
		"a: jump b",
		"b: jump a",
	}

	emu := assemble(t, program)

	_, err := emu.RunProgram(100)
	assert.ErrorIs(err, ErrTickLimit)

	var runtime *ErrRuntime
	assert.ErrorAs(err, &runtime)
	assert.Equal(100, runtime.Tick)
}

func TestEmulatorHold(t *testing.T) {
	assert := assert.New(t)

	emu := assemble(t, []string{"halt"})
	emu.Reset()
	emu.Run = false

	for range 8 {
		halted, err := emu.Tick()
		assert.NoError(err)
		assert.False(halted)
	}
	assert.Equal(cpu.T0, emu.Cpu.State)
}

func TestEmulatorLineNo(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"mvi r0 1",
		"halt",
	}

	emu := assemble(t, program)
	emu.Reset()

	// Step into the first instruction.
	_, err := emu.Tick()
	assert.NoError(err)
	assert.Equal(1, emu.LineNo())
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for attr, val := range NewEmulator().Defines() {
		defines[attr] = val
	}

	assert.Equal("0x100", defines["DEVICE_GPIO"])
	assert.Equal("1", defines["OP_MVI"])
}
