// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// AluOp is the 2-bit ALU operation code driven by the control unit.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_ADD = AluOp(0) // add
	ALU_SUB = AluOp(1) // sub
	ALU_AND = AluOp(2) // and
	// Encoding 3 aliases subtract. The control unit never emits it; the
	// duplication is part of the architecture and kept as-is.
)

// Alu computes the 9-bit result of an ALU operation. Operand a comes from
// the A buffer, operand b from the bus. Addition wraps at 9 bits and
// subtraction is a + ~b + 1; no carry or overflow is exposed.
func Alu(op AluOp, a Word, b Word) (result Word) {
	a &= WORD_MASK
	b &= WORD_MASK

	switch op {
	case ALU_ADD:
		result = (a + b) & WORD_MASK
	case ALU_SUB, AluOp(3):
		result = (a + (^b & WORD_MASK) + 1) & WORD_MASK
	case ALU_AND:
		result = a & b
	}

	return
}
