// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cpu implements the NanoProcessor core and its assembler.
//
// The core is a 9-bit multi-cycle machine: a control-unit finite state
// machine (T0..T5) drives a datapath of eight registers (r0..r6 plus the
// program counter), an instruction register, ALU operand and result
// buffers, and the registered address/data/write port facing the
// memory-mapped fabric. Exactly one source drives the shared bus each
// cycle; the arbiter defaults to external data-in when nothing asserts.
//
// The assembler translates the eight-mnemonic assembly language into flat
// 128-word memory images, supporting labels, equates, macros, and
// compile-time expression evaluation.
package cpu
