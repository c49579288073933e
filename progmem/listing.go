package progmem

import (
	"github.com/avremu/avremu/isa"
)

// Entry is one instruction of an unlinked routine. A non-empty Label is
// resolved to the start address of the named block and stored as
// operand 1 when the listing is linked.
type Entry struct {
	Op    isa.OpCode
	Op1   uint8
	Op2   uint8
	Label string
}

// Block is one named routine of symbolic entries.
type Block struct {
	Name    string
	Entries []Entry
}

// Listing is the single ordered source a program is generated from.
// Both the encoded words and the symbol table fall out of it, so a
// routine can be inserted or resequenced without editing any address
// constant.
type Listing []Block

// Link resolves label operands against the block layout and encodes the
// listing into a Program.
func (listing Listing) Link() (prog *Program, err error) {
	length := 0
	starts := make(map[string]int, len(listing))
	for _, block := range listing {
		_, ok := starts[block.Name]
		if ok {
			err = ErrRoutineDuplicate
			return
		}
		starts[block.Name] = length
		length += len(block.Entries)
	}

	if length > MEMORY_SIZE {
		err = ErrProgramSize(length)
		return
	}

	prog = &Program{
		Routines: make([]Routine, 0, len(listing)),
	}
	for _, block := range listing {
		words := make([]Word, 0, len(block.Entries))
		for _, entry := range block.Entries {
			op1 := entry.Op1
			if len(entry.Label) != 0 {
				start, ok := starts[entry.Label]
				if !ok {
					prog = nil
					err = ErrLabelMissing(entry.Label)
					return
				}
				op1 = uint8(start)
			}
			words = append(words, Assemble(entry.Op, op1, entry.Op2))
		}
		prog.Routines = append(prog.Routines, Routine{Name: block.Name, Words: words})
	}

	return
}
