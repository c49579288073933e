package progmem

import (
	"iter"
)

// Routine is a named, contiguous run of encoded instruction words.
type Routine struct {
	Name  string
	Words []Word
}

// Program is an ordered list of routines, laid out back to back from
// address zero.
type Program struct {
	Routines []Routine
}

// Len returns the total number of encoded words.
func (prog *Program) Len() (length int) {
	for _, routine := range prog.Routines {
		length += len(routine.Words)
	}
	return
}

// End returns the first address past the encoded program.
func (prog *Program) End() int {
	return prog.Len()
}

// Words iterates the encoded program as (address, word) pairs in
// ascending address order.
func (prog *Program) Words() iter.Seq2[uint8, Word] {
	return func(yield func(address uint8, word Word) bool) {
		address := 0
		for _, routine := range prog.Routines {
			for _, word := range routine.Words {
				if !yield(uint8(address), word) {
					return
				}
				address++
			}
		}
	}
}

// Symbols derives the subroutine address ranges from the routine
// layout.
func (prog *Program) Symbols() (table SymbolTable) {
	address := 0
	for _, routine := range prog.Routines {
		next := address + len(routine.Words)
		table = append(table, SymbolRange{Start: address, End: next, Name: routine.Name})
		address = next
	}
	return
}
