package isa

// CPU register file ids. Registers r26:r27 double as the 16-bit X
// pointer pair, low byte first.
const (
	R16 = uint8(16)
	R17 = uint8(17)
	R18 = uint8(18)
	R19 = uint8(19)
	R24 = uint8(24)
	XL  = uint8(26)
	XH  = uint8(27)

	// XREG is the operand id selecting the X pair as a pointer.
	XREG = XL
)

// I/O space addresses for the three simulated ports.
const (
	DDRB  = uint8(0x00)
	PORTB = uint8(0x01)
	PINB  = uint8(0x02)
	DDRC  = uint8(0x03)
	PORTC = uint8(0x04)
	PINC  = uint8(0x05)
	DDRD  = uint8(0x06)
	PORTD = uint8(0x07)
	PIND  = uint8(0x08)
)

// PORTB pin bit numbers. PORTB0 is I/O pin 8 on the reference board.
const (
	PORTB0 = uint8(0)
	PORTB1 = uint8(1)
	PORTB2 = uint8(2)
	PORTB3 = uint8(3)
	PORTB4 = uint8(4)
	PORTB5 = uint8(5)
	PORTB6 = uint8(6)
	PORTB7 = uint8(7)
)

// Low returns the low byte of a 16-bit value, for loading into the low
// half of a pointer pair.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high byte of a 16-bit value.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}
