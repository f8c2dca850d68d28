// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nanoproc/nanoproc/cpu"
	"github.com/nanoproc/nanoproc/emulator"
	"github.com/nanoproc/nanoproc/io"
)

func main() {
	var compile string
	var image string
	var output string
	var save bool
	var ticks int
	var pins uint
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&image, "i", "", "memory image file to load")
	flag.StringVar(&output, "o", "", "memory image file to write")
	flag.BoolVar(&save, "s", false, "Save memory image, do not execute")
	flag.IntVar(&ticks, "t", 1000000, "Tick limit")
	flag.UintVar(&pins, "p", uint(io.WORD_MASK), "GPIO input pin levels")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Assemble a new program.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		err = emu.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Load a prebuilt memory image.
	if len(image) != 0 {
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		words, err := io.UnmarshalImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}

		emu.Program = &cpu.Program{
			Opcodes: []cpu.Opcode{{Codes: words}},
		}
	}

	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()

		mem := io.Memory{}
		mem.Load(emu.Program.Image())
		err = mem.Marshal(ouf)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if save {
		return
	}

	emu.Reset()
	emu.Fabric.Gpio.Pins = io.Word(pins) & io.WORD_MASK

	for {
		halted, err := emu.Tick()
		if err != nil {
			log.Fatal(err)
		}
		if halted {
			break
		}
		if emu.Cpu.Ticks >= ticks {
			log.Fatalf("tick limit %v exceeded at line %v", ticks, emu.LineNo())
		}
	}

	fmt.Printf("halted after %v ticks\n", emu.Cpu.Ticks)
	fmt.Print(emu.Cpu.String())
	fmt.Printf(" gpio: %03x mode: %03x\n",
		uint16(emu.Fabric.Gpio.Read(0)), uint16(emu.Fabric.Mode.Direction))
}
