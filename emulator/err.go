// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/nanoproc/nanoproc/translate"
)

var f = translate.From

// ErrTickLimit indicates the program did not halt within its cycle budget.
var ErrTickLimit = errors.New(f("tick limit exceeded"))

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Tick   int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("tick %d line %d %v", err.Tick, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
