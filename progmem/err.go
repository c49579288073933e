package progmem

import (
	"errors"

	"github.com/avremu/avremu/translate"
)

var f = translate.From

var (
	// Listing errors
	ErrRoutineDuplicate = errors.New(f("routine duplicated"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrProgramSize int

func (ep ErrProgramSize) Error() string {
	return f("program of %d words exceeds the %d word memory", int(ep), MEMORY_SIZE)
}
