// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Reset()

	mem.Write(5, 0x123)
	assert.Equal(Word(0x123), mem.Read(5))

	// Values are clipped to the word width.
	mem.Write(6, 0x3ff)
	assert.Equal(Word(0x1ff), mem.Read(6))

	// Offsets wrap at the memory size.
	mem.Write(MEM_WORDS+5, 0x0aa)
	assert.Equal(Word(0x0aa), mem.Read(5))
}

func TestMemoryLoad(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write(100, 0x1ff)

	mem.Load([]Word{1, 2, 3})
	assert.Equal(Word(1), mem.Read(0))
	assert.Equal(Word(3), mem.Read(2))

	// Load replaces the whole contents.
	assert.Equal(Word(0), mem.Read(100))
}

func TestMemoryMarshal(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Load([]Word{0x1ff, 0x040, 5})

	var out strings.Builder
	err := mem.Marshal(&out)
	assert.NoError(err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(lines, MEM_WORDS)
	assert.Equal("1ff", lines[0])
	assert.Equal("040", lines[1])
	assert.Equal("005", lines[2])
	assert.Equal("000", lines[3])
}

func TestMemoryUnmarshal(t *testing.T) {
	assert := assert.New(t)

	image := strings.Join([]string{
		"; memory image",
		"040",
		"005 ; literal",
		"",
		"1ff",
	}, "\n")

	mem := &Memory{}
	err := mem.Unmarshal(strings.NewReader(image))
	assert.NoError(err)
	assert.Equal(Word(0x040), mem.Read(0))
	assert.Equal(Word(0x005), mem.Read(1))
	assert.Equal(Word(0x1ff), mem.Read(2))
}

func TestMemoryMarshalRoundTrip(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Write(0, 0x123)
	mem.Write(127, 0x1ff)

	var out strings.Builder
	assert.NoError(mem.Marshal(&out))

	loaded := &Memory{}
	assert.NoError(loaded.Unmarshal(strings.NewReader(out.String())))
	assert.Equal(mem.Cell, loaded.Cell)
}

func TestMemoryUnmarshalErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := UnmarshalImage(strings.NewReader("zzz\n"))
	var word ErrImageWord
	assert.True(errors.As(err, &word))
	assert.Equal(1, word.LineNo)

	// A 16-bit hex value is parseable but not a 9-bit word.
	_, err = UnmarshalImage(strings.NewReader("200\n"))
	assert.True(errors.As(err, &word))

	big := strings.Repeat("000\n", MEM_WORDS+1)
	_, err = UnmarshalImage(strings.NewReader(big))
	assert.ErrorIs(err, ErrImageSize)
}
