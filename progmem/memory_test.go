package progmem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avremu/avremu/isa"
)

func TestMemory_Read_Empty(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	for n := range MEMORY_SIZE {
		assert.Equal(Nop, mem.Read(uint8(n)))
	}
}

func TestMemory_Write(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Write(Blink())

	assert.Equal(Assemble(isa.JMP, 8, 0), mem.Read(0))
	assert.Equal(Assemble(isa.CALL, 18, 0), mem.Read(8))
	for n := 30; n < MEMORY_SIZE; n++ {
		assert.Equal(Nop, mem.Read(uint8(n)))
	}
}

func TestMemory_Write_Idempotent(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Write(Blink())

	var before [MEMORY_SIZE]Word
	for n := range MEMORY_SIZE {
		before[n] = mem.Read(uint8(n))
	}

	// A second write is a pure no-op, even with a different program.
	other, err := Listing{
		{Name: "other", Entries: []Entry{
			{Op: isa.LDI, Op1: isa.R16, Op2: 0xff},
		}},
	}.Link()
	assert.NoError(err)

	mem.Write(other)
	mem.Write(Blink())

	for n := range MEMORY_SIZE {
		assert.Equal(before[n], mem.Read(uint8(n)))
	}
}
