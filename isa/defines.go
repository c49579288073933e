package isa

import (
	"fmt"
	"iter"
	"maps"
)

var _isa_defines = map[string]string{
	"DDRB":  fmt.Sprintf("%d", DDRB),
	"PORTB": fmt.Sprintf("%d", PORTB),
	"PINB":  fmt.Sprintf("%d", PINB),
	"DDRC":  fmt.Sprintf("%d", DDRC),
	"PORTC": fmt.Sprintf("%d", PORTC),
	"PINC":  fmt.Sprintf("%d", PINC),
	"DDRD":  fmt.Sprintf("%d", DDRD),
	"PORTD": fmt.Sprintf("%d", PORTD),
	"PIND":  fmt.Sprintf("%d", PIND),
}

func init() {
	for n := range 32 {
		_isa_defines[fmt.Sprintf("r%d", n)] = fmt.Sprintf("%d", n)
	}
	for n := range 8 {
		_isa_defines[fmt.Sprintf("PORTB%d", n)] = fmt.Sprintf("%d", n)
	}
	_isa_defines["xl"] = fmt.Sprintf("%d", XL)
	_isa_defines["xh"] = fmt.Sprintf("%d", XH)
	_isa_defines["x"] = fmt.Sprintf("%d", XREG)
}

// Defines returns an iter over the symbolic names of the ISA: register
// ids, I/O addresses, and pin numbers. The assembler seeds its equate
// table from it.
func Defines() iter.Seq2[string, string] {
	return maps.All(_isa_defines)
}
