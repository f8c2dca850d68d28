// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location and
// generated memory words. An mvi line generates two words, the instruction
// and its literal; most lines generate one.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Codes     []Word
	LinkLabel string
}

// Program is an assembled program: the ordered opcodes plus enough source
// information to map an address back to its line.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the opcode covering an address.
type Debug struct {
	*Opcode
	Index int
}

func (prog *Program) Debug(addr Word) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Codes iterates the program's memory words in address order.
func (prog *Program) Codes() iter.Seq2[Word, Word] {
	return func(yield func(addr Word, code Word) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(Word(op.Addr+n), code) {
					return
				}
			}
		}
	}
}

// Image renders the flat memory image: one 9-bit word per address from 0
// through the last assembled word.
func (prog *Program) Image() (image []Word) {
	for addr, code := range prog.Codes() {
		for int(addr) >= len(image) {
			image = append(image, 0)
		}
		image[addr] = code
	}

	return
}
