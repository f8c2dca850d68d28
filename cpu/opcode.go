// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"

	"github.com/nanoproc/nanoproc/io"
)

// Word is the 9-bit architectural word.
type Word = io.Word

// WORD_MASK masks a value to the 9-bit word width.
const WORD_MASK = io.WORD_MASK

// Op is an instruction opcode, held in bits 8:6 of the instruction word.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_MV   = Op(0) // mv
	OP_MVI  = Op(1) // mvi
	OP_ADD  = Op(2) // add
	OP_SUB  = Op(3) // sub
	OP_LD   = Op(4) // ld
	OP_ST   = Op(5) // st
	OP_MVNZ = Op(6) // mvnz
	OP_AND  = Op(7) // and
)

// Reg is a register code. Code 7 selects the program counter, which shares
// the register code space but adds an increment input.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_R0 = Reg(0) // r0
	REG_R1 = Reg(1) // r1
	REG_R2 = Reg(2) // r2
	REG_R3 = Reg(3) // r3
	REG_R4 = Reg(4) // r4
	REG_R5 = Reg(5) // r5
	REG_R6 = Reg(6) // r6
	REG_PC = Reg(7) // pc
)

// Encode packs an instruction word: opcode in bits 8:6, the X register code
// in bits 5:3, the Y register code in bits 2:0.
func Encode(op Op, x Reg, y Reg) Word {
	return (Word(op)&0x7)<<6 | (Word(x)&0x7)<<3 | (Word(y) & 0x7)
}

// Decode splits an instruction word into its opcode and register codes.
// Pure combinational mapping; the one-hot expansion of the register codes
// happens in the control unit's output vectors.
func Decode(word Word) (op Op, x Reg, y Reg) {
	op = Op((word >> 6) & 0x7)
	x = Reg((word >> 3) & 0x7)
	y = Reg(word & 0x7)
	return
}

// Disassemble renders an instruction word as assembly text. The literal
// word following an mvi is data, which a lone word cannot reveal, so
// listings interleave literals themselves.
func Disassemble(word Word) string {
	op, x, y := Decode(word)

	switch op {
	case OP_MVI:
		return fmt.Sprintf("%v %v", op, x)
	default:
		return fmt.Sprintf("%v %v %v", op, x, y)
	}
}
