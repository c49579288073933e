package progmem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avremu/avremu/isa"
)

func TestBlink_Layout(t *testing.T) {
	assert := assert.New(t)

	prog := Blink()
	assert.Equal(30, prog.Len())

	assert.Equal(SymbolTable{
		{Start: 0, End: 8, Name: "RESET_vect"},
		{Start: 8, End: 9, Name: "main"},
		{Start: 9, End: 13, Name: "main_loop"},
		{Start: 13, End: 18, Name: "led_blink"},
		{Start: 18, End: 21, Name: "setup"},
		{Start: 21, End: 24, Name: "init_ports"},
		{Start: 24, End: 30, Name: "init_registers"},
	}, prog.Symbols())
}

func TestBlink_Words(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Write(Blink())

	// Reset vector: jump to main, then nop padding.
	assert.Equal(Assemble(isa.JMP, 8, 0), mem.Read(0))
	for n := uint8(1); n < 8; n++ {
		assert.Equal(Nop, mem.Read(n))
	}

	// main and main_loop.
	assert.Equal(Assemble(isa.CALL, 18, 0), mem.Read(8))
	assert.Equal(Assemble(isa.CALL, 13, 0), mem.Read(9))
	assert.Equal(Assemble(isa.ST, isa.XREG, isa.R18), mem.Read(10))
	assert.Equal(Assemble(isa.LD, isa.R24, isa.XREG), mem.Read(11))
	assert.Equal(Assemble(isa.JMP, 9, 0), mem.Read(12))

	// led_blink.
	assert.Equal(Assemble(isa.OUT, isa.PORTB, isa.R16), mem.Read(13))
	assert.Equal(Assemble(isa.OUT, isa.PORTB, isa.R19), mem.Read(16))
	assert.Equal(Assemble(isa.RET, 0, 0), mem.Read(17))

	// setup.
	assert.Equal(Assemble(isa.CALL, 21, 0), mem.Read(18))
	assert.Equal(Assemble(isa.CALL, 24, 0), mem.Read(19))
	assert.Equal(Assemble(isa.RET, 0, 0), mem.Read(20))

	// init_ports.
	assert.Equal(Assemble(isa.LDI, isa.R16, 0b111), mem.Read(21))
	assert.Equal(Assemble(isa.OUT, isa.DDRB, isa.R16), mem.Read(22))
	assert.Equal(Assemble(isa.RET, 0, 0), mem.Read(23))

	// init_registers, including the split 16-bit pointer.
	assert.Equal(Assemble(isa.LDI, isa.R16, 1), mem.Read(24))
	assert.Equal(Assemble(isa.LDI, isa.R17, 2), mem.Read(25))
	assert.Equal(Assemble(isa.LDI, isa.R18, 4), mem.Read(26))
	assert.Equal(Assemble(isa.LDI, isa.XL, 0xe8), mem.Read(27))
	assert.Equal(Assemble(isa.LDI, isa.XH, 0x03), mem.Read(28))
	assert.Equal(Assemble(isa.RET, 0, 0), mem.Read(29))

	// Everything past the program reads back as nop.
	for n := 30; n < MEMORY_SIZE; n++ {
		assert.Equal(Nop, mem.Read(uint8(n)))
	}
}

func TestBlink_SubroutineName(t *testing.T) {
	assert := assert.New(t)

	table := Blink().Symbols()

	assert.Equal("RESET_vect", table.SubroutineName(0))
	assert.Equal("main", table.SubroutineName(8))
	assert.Equal("main_loop", table.SubroutineName(12))
	assert.Equal("led_blink", table.SubroutineName(17))
	assert.Equal("setup", table.SubroutineName(20))
	assert.Equal("init_ports", table.SubroutineName(23))
	assert.Equal("init_registers", table.SubroutineName(29))
	assert.Equal("Unknown", table.SubroutineName(30))
}

func TestBlink_Partition(t *testing.T) {
	assert := assert.New(t)

	table := Blink().Symbols()

	// Every address inside the program belongs to exactly one range,
	// every address past it to none.
	for n := range MEMORY_SIZE {
		matches := 0
		for _, sym := range table {
			if n >= sym.Start && n < sym.End {
				matches++
			}
		}
		if n < 30 {
			assert.Equal(1, matches, "address %d", n)
		} else {
			assert.Equal(0, matches, "address %d", n)
		}
	}
}
