// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"errors"

	"github.com/nanoproc/nanoproc/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageSize = errors.New(f("image larger than memory"))
)

// ErrImageWord reports a malformed word in a memory image.
type ErrImageWord struct {
	LineNo int
	Text   string
}

func (err ErrImageWord) Error() string {
	return f("line %d '%v' is not a 9-bit word", err.LineNo, err.Text)
}
