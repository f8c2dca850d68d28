// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"
	"strings"
)

// Memory is the 128-word RAM device. The assembler's output image is loaded
// here before execution begins.
type Memory struct {
	Cell [MEM_WORDS]Word
}

var _ Device = (*Memory)(nil)

// Defines returns an iter of defines for the device.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"MEM_WORDS": fmt.Sprintf("%v", MEM_WORDS),
	})
}

// Reset zeroes all memory cells.
func (mem *Memory) Reset() {
	clear(mem.Cell[:])
}

// Load copies a memory image into the low cells, zeroing the remainder.
func (mem *Memory) Load(image []Word) {
	mem.Reset()
	for n, word := range image {
		if n >= MEM_WORDS {
			break
		}
		mem.Cell[n] = word & WORD_MASK
	}
}

func (mem *Memory) Read(offset Word) Word {
	return mem.Cell[offset&OFFSET_MASK]
}

func (mem *Memory) Write(offset Word, value Word) {
	mem.Cell[offset&OFFSET_MASK] = value & WORD_MASK
}

// Marshal writes the memory contents as a text image, one 3-digit hex word
// per line from address 0 upward.
func (mem *Memory) Marshal(out io.Writer) (err error) {
	for _, word := range mem.Cell {
		_, err = fmt.Fprintf(out, "%03x\n", uint16(word))
		if err != nil {
			return
		}
	}
	return
}

// UnmarshalImage parses a text image into a word slice. Blank lines are
// skipped and ';' starts a comment, so assembler listings annotate freely.
func UnmarshalImage(in io.Reader) (image []Word, err error) {
	scanner := bufio.NewScanner(in)

	var lineno int
	for scanner.Scan() {
		lineno += 1
		text, _, _ := strings.Cut(scanner.Text(), ";")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		value, parse_err := strconv.ParseUint(text, 16, 16)
		if parse_err != nil || Word(value) > WORD_MASK {
			err = ErrImageWord{LineNo: lineno, Text: text}
			return
		}

		if len(image) == MEM_WORDS {
			err = ErrImageSize
			return
		}
		image = append(image, Word(value))
	}

	err = scanner.Err()
	return
}

// Unmarshal loads a text image into memory.
func (mem *Memory) Unmarshal(in io.Reader) (err error) {
	image, err := UnmarshalImage(in)
	if err != nil {
		return
	}

	mem.Load(image)
	return
}
