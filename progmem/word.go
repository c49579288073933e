package progmem

import (
	"fmt"

	"github.com/avremu/avremu/isa"
)

// Word is a single 24-bit instruction word in a 32-bit container.
// Bits 23-16 hold the opcode, bits 15-8 operand 1, and bits 7-0
// operand 2. The upper 8 bits are always zero.
type Word uint32

// Nop is the cleared instruction word. A memory slot reads back as Nop
// until a program is written over it.
const Nop = Word(0)

// Assemble packs an opcode and two operands into an instruction word.
// All three inputs are 8 bits wide by type, so wider source values are
// truncated to their low byte before the call, never rejected.
func Assemble(op isa.OpCode, op1, op2 uint8) Word {
	return (Word(op) << 16) | (Word(op1) << 8) | Word(op2)
}

// OpCode returns the opcode field from the instruction word.
func (w Word) OpCode() isa.OpCode {
	return isa.OpCode((w >> 16) & 0xff)
}

// Op1 returns the first operand (usually a destination).
func (w Word) Op1() uint8 {
	return uint8((w >> 8) & 0xff)
}

// Op2 returns the second operand (usually a constant or a read location).
func (w Word) Op2() uint8 {
	return uint8(w & 0xff)
}

// String returns the assembly language representation of this word.
func (w Word) String() string {
	return fmt.Sprintf("%v 0x%02x 0x%02x", w.OpCode(), w.Op1(), w.Op2())
}
