package progmem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avremu/avremu/isa"
)

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Word(0), Assemble(isa.NOP, 0, 0))
	assert.Equal(Word(0xffffff), Assemble(isa.OpCode(0xff), 0xff, 0xff))

	assert.Equal(Word(0x160800), Assemble(isa.JMP, 0x08, 0x00))
	assert.Equal(Word(0x011003), Assemble(isa.LDI, isa.R16, 0x03))

	samples := []uint8{0x00, 0x01, 0x7f, 0x80, 0xaa, 0xff}
	for _, op := range samples {
		for _, op1 := range samples {
			for _, op2 := range samples {
				expected := (uint32(op) << 16) | (uint32(op1) << 8) | uint32(op2)
				assert.Equal(Word(expected), Assemble(isa.OpCode(op), op1, op2))
			}
		}
	}
}

func TestWord_Decode(t *testing.T) {
	assert := assert.New(t)

	word := Assemble(isa.CALL, 0x12, 0x34)
	assert.Equal(isa.CALL, word.OpCode())
	assert.Equal(uint8(0x12), word.Op1())
	assert.Equal(uint8(0x34), word.Op2())

	assert.Equal(isa.NOP, Nop.OpCode())
	assert.Equal(uint8(0), Nop.Op1())
	assert.Equal(uint8(0), Nop.Op2())
}

func TestWord_UpperBitsZero(t *testing.T) {
	assert := assert.New(t)

	word := Assemble(isa.OpCode(0xff), 0xff, 0xff)
	assert.Equal(Word(0), word>>24)
}

func TestWord_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("jmp 0x08 0x00", Assemble(isa.JMP, 8, 0).String())
	assert.Equal("nop 0x00 0x00", Nop.String())
	assert.Equal("out 0x01 0x10", Assemble(isa.OUT, isa.PORTB, isa.R16).String())
}
