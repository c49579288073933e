package progmem

import (
	"github.com/avremu/avremu/isa"
)

// LED pin assignments for the blink demonstration program. Three leds
// sit on the low PORTB pins (I/O pins 8-10 on the reference board).
const (
	LED1 = isa.PORTB0
	LED2 = isa.PORTB1
	LED3 = isa.PORTB2
)

// DATA_POINTER is the data memory address init_registers loads into the
// X pair, split into low and high bytes.
const DATA_POINTER = uint16(1000)

// Blink returns the built-in demonstration program. The reset vector
// jumps to main, which runs setup once and then blinks the three leds
// forever. Subroutine addresses fall out of the block layout; nothing
// here names an address directly.
func Blink() *Program {
	listing := Listing{
		// Reset vector and start address for the program. A jump is
		// made to the main subroutine in order to start the program.
		{Name: "RESET_vect", Entries: []Entry{
			{Op: isa.JMP, Label: "main"},
			{Op: isa.NOP},
			{Op: isa.NOP},
			{Op: isa.NOP},
			{Op: isa.NOP},
			{Op: isa.NOP},
			{Op: isa.NOP},
			{Op: isa.NOP},
		}},

		// main: Initiates the system at start. Values for enabling
		// each led are kept in r16 - r18 for direct write to PORTB,
		// and the X pair points at DATA_POINTER in data memory.
		{Name: "main", Entries: []Entry{
			{Op: isa.CALL, Label: "setup"},
		}},

		// main_loop: Blinks the leds in a loop continuously.
		{Name: "main_loop", Entries: []Entry{
			{Op: isa.CALL, Label: "led_blink"},
			{Op: isa.ST, Op1: isa.XREG, Op2: isa.R18},
			{Op: isa.LD, Op1: isa.R24, Op2: isa.XREG},
			{Op: isa.JMP, Label: "main_loop"},
		}},

		// led_blink: Blinks the leds in a sequence.
		{Name: "led_blink", Entries: []Entry{
			{Op: isa.OUT, Op1: isa.PORTB, Op2: isa.R16},
			{Op: isa.OUT, Op1: isa.PORTB, Op2: isa.R17},
			{Op: isa.OUT, Op1: isa.PORTB, Op2: isa.R18},
			{Op: isa.OUT, Op1: isa.PORTB, Op2: isa.R19},
			{Op: isa.RET},
		}},

		// setup: Initiates I/O ports and CPU registers.
		{Name: "setup", Entries: []Entry{
			{Op: isa.CALL, Label: "init_ports"},
			{Op: isa.CALL, Label: "init_registers"},
			{Op: isa.RET},
		}},

		// init_ports: Sets the led pins to outputs.
		{Name: "init_ports", Entries: []Entry{
			{Op: isa.LDI, Op1: isa.R16, Op2: (1 << LED1) | (1 << LED2) | (1 << LED3)},
			{Op: isa.OUT, Op1: isa.DDRB, Op2: isa.R16},
			{Op: isa.RET},
		}},

		// init_registers: Initiates CPU registers.
		{Name: "init_registers", Entries: []Entry{
			{Op: isa.LDI, Op1: isa.R16, Op2: 1 << LED1},
			{Op: isa.LDI, Op1: isa.R17, Op2: 1 << LED2},
			{Op: isa.LDI, Op1: isa.R18, Op2: 1 << LED3},
			{Op: isa.LDI, Op1: isa.XL, Op2: isa.Low(DATA_POINTER)},
			{Op: isa.LDI, Op1: isa.XH, Op2: isa.High(DATA_POINTER)},
			{Op: isa.RET},
		}},
	}

	prog, err := listing.Link()
	if err != nil {
		panic("blink listing cannot link: " + err.Error())
	}

	return prog
}
