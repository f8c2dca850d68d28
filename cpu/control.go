// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// State is the control-unit FSM state. Every instruction begins in T0; mv
// and mvnz finish in T3, st in T4, and the rest in T5.
type State int

//go:generate go tool stringer -type=State
const (
	T0 = State(0)
	T1 = State(1)
	T2 = State(2)
	T3 = State(3)
	T4 = State(4)
	T5 = State(5)
)

// Signals is the complete control-signal set for one cycle. A fresh value
// is computed every cycle with all fields defaulting to zero, mirroring the
// hardware's implicit default assignment; Control then overrides per state
// and opcode.
type Signals struct {
	Done   bool // Last cycle of the current instruction.
	IRIn   bool // Load the instruction register from the bus.
	AIn    bool // Load the ALU operand buffer from the bus.
	GIn    bool // Load the ALU result buffer.
	GOut   bool // Drive the result buffer onto the bus.
	DinOut bool // Drive external data-in onto the bus.
	AddrIn bool // Load the address register from the bus.
	DoutIn bool // Load the data-out register from the bus.
	Write  bool // Write strobe, registered for the following cycle.
	IncrPC bool // Increment the program counter.
	AluOp  AluOp

	RIn  [8]bool // Per-register load enables, PC at index 7.
	ROut [8]bool // Per-register bus drive enables, PC at index 7.
}

// NextState computes the FSM transition for one clock edge. Run is sampled
// only in T0; Done retires an instruction from T3 or T4 early, and T5 is
// always terminal.
func NextState(state State, run bool, done bool) (next State) {
	switch state {
	case T0:
		if run {
			next = T1
		} else {
			next = T0
		}
	case T1:
		next = T2
	case T2:
		next = T3
	case T3:
		if done {
			next = T0
		} else {
			next = T4
		}
	case T4:
		if done {
			next = T0
		} else {
			next = T5
		}
	case T5:
		next = T0
	}

	return
}

// Control computes the control signals for one cycle from the FSM state,
// the decoded instruction, and the derived zero flag. Pure function with
// no side effects; callers commit the gated register updates afterward.
func Control(state State, op Op, x Reg, y Reg, zeroG bool) (sig Signals) {
	switch state {
	case T0:
		// Present PC as the fetch address.
		sig.ROut[REG_PC] = true
		sig.AddrIn = true
	case T1:
		// Memory latency cycle; advance PC past the fetch word.
		sig.IncrPC = true
	case T2:
		// Fetched word arrives on data-in, the bus default.
		sig.IRIn = true
	case T3:
		switch op {
		case OP_MV:
			sig.ROut[y] = true
			sig.RIn[x] = true
			sig.Done = true
		case OP_MVI:
			// Present PC again: the literal follows the instruction.
			sig.ROut[REG_PC] = true
			sig.AddrIn = true
			sig.IncrPC = true
		case OP_ADD, OP_SUB, OP_AND:
			sig.ROut[x] = true
			sig.AIn = true
		case OP_LD, OP_ST:
			sig.ROut[y] = true
			sig.AddrIn = true
		case OP_MVNZ:
			sig.Done = true
			if !zeroG {
				sig.ROut[y] = true
				sig.RIn[x] = true
			}
		}
	case T4:
		switch op {
		case OP_ADD:
			sig.ROut[y] = true
			sig.GIn = true
			sig.AluOp = ALU_ADD
		case OP_SUB:
			sig.ROut[y] = true
			sig.GIn = true
			sig.AluOp = ALU_SUB
		case OP_AND:
			sig.ROut[y] = true
			sig.GIn = true
			sig.AluOp = ALU_AND
		case OP_ST:
			sig.ROut[x] = true
			sig.DoutIn = true
			sig.Write = true
			sig.Done = true
		case OP_LD, OP_MVI:
			// Wait state: the addressed device presents its read data
			// one cycle after the address, so nothing may move yet.
		}
	case T5:
		switch op {
		case OP_MVI, OP_LD:
			sig.DinOut = true
			sig.RIn[x] = true
			sig.Done = true
		case OP_ADD, OP_SUB, OP_AND:
			sig.GOut = true
			sig.RIn[x] = true
			sig.Done = true
		}
	}

	return
}
