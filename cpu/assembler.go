// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	nanoio "github.com/nanoproc/nanoproc/io"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler translates NanoProcessor assembly into a Program. It is a
// single-pass macro assembler with a final linking pass that patches label
// references into mvi literal words.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of jump labels to word addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate. The
// emulator's Defines() feed through here so assembly can name the device
// base addresses.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap maps register names to register codes.
var regMap = map[string]Reg{
	"r0": REG_R0,
	"r1": REG_R1,
	"r2": REG_R2,
	"r3": REG_R3,
	"r4": REG_R4,
	"r5": REG_R5,
	"r6": REG_R6,
	"r7": REG_PC,
	"pc": REG_PC,
}

// opMap maps the two-register mnemonics.
var opMap = map[string]Op{
	"mv":   OP_MV,
	"add":  OP_ADD,
	"sub":  OP_SUB,
	"and":  OP_AND,
	"ld":   OP_LD,
	"st":   OP_ST,
	"mvnz": OP_MVNZ,
}

// getReg returns the register code for a word.
func (asm *Assembler) getReg(word string) (reg Reg, err error) {
	reg, ok := regMap[word]
	if !ok {
		err = ErrRegisterInvalid
	}
	return
}

// valueOf returns the 9-bit value of a simple word. Negative values take
// their two's complement form; a leading '~' complements the 9-bit value.
func (asm *Assembler) valueOf(word string) (value Word, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > int64(WORD_MASK) || v64 < -(int64(WORD_MASK)+1)/2 {
		err = ErrValueRange
		return
	}

	value = Word(v64) & WORD_MASK

	if invert {
		value = ^value & WORD_MASK
	}

	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		value9, value_err := asm.valueOf(str)
		if value_err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value9))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", fmt.Sprintf("%v_%v_", name, lineno))
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentAddr gets the next word address to assemble at.
func (asm *Assembler) currentAddr() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Addr + len(last.Codes)
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		all_words := strings.Split(line, " ")
		var words []string
		for _, single := range all_words {
			if len(single) > 0 {
				words = append(words, single)
			}
		}

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of label references into literal words.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		op.Codes[len(op.Codes)-1] = Word(addr) & WORD_MASK
	}

	if asm.currentAddr() > int(nanoio.MEM_WORDS) {
		err = ErrProgramTooBig
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// literalOf resolves an mvi/jump/.word operand: either a value or a label
// reference to be linked after the first pass.
func (asm *Assembler) literalOf(word string) (value Word, label string, err error) {
	value, err = asm.valueOf(word)
	if _, not_number := err.(ErrParseNumber); not_number {
		// Assume a label; the link pass reports it if never defined.
		value = 0
		label = word
		err = nil
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []Word
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Codes: codes, LinkLabel: label}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	op, is_op := opMap[words[0]]

	switch {
	case is_op:
		// OP rX rY
		if len(words) < 3 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 3 {
			err = ErrOpcodeExtraArgs
			return
		}
		var x, y Reg
		x, err = asm.getReg(words[1])
		if err != nil {
			return
		}
		y, err = asm.getReg(words[2])
		if err != nil {
			return
		}
		codes = []Word{Encode(op, x, y)}
	case words[0] == "mvi":
		// mvi rX VALUE|LABEL; the literal occupies the following word.
		if len(words) < 3 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 3 {
			err = ErrOpcodeExtraArgs
			return
		}
		var x Reg
		x, err = asm.getReg(words[1])
		if err != nil {
			return
		}
		var literal Word
		literal, label, err = asm.literalOf(words[2])
		if err != nil {
			return
		}
		codes = []Word{Encode(OP_MVI, x, REG_R0), literal}
	case words[0] == "jump":
		// jump LABEL|VALUE => mvi pc LABEL|VALUE
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var literal Word
		literal, label, err = asm.literalOf(words[1])
		if err != nil {
			return
		}
		codes = []Word{Encode(OP_MVI, REG_PC, REG_R0), literal}
	case words[0] == "halt":
		// halt => mvi pc <own address>, the jump-to-self idle loop.
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		codes = []Word{Encode(OP_MVI, REG_PC, REG_R0), Word(asm.currentAddr()) & WORD_MASK}
	case words[0] == ".word":
		// .word VALUE... | .word LABEL
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) == 2 {
			var literal Word
			literal, label, err = asm.literalOf(words[1])
			if err != nil {
				return
			}
			codes = []Word{literal}
			return
		}
		for _, word := range words[1:] {
			var value Word
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			codes = append(codes, value)
		}
	default:
		err = ErrInstructionInvalid
		return
	}

	return
}
