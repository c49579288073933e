// Package progmem implements the program memory of the simulated
// microcontroller: a fixed store of 256 pre-encoded 24-bit instruction
// words, the encoder that packs (opcode, operand, operand) triples into
// words, and the symbol table that attributes addresses to subroutine
// names.
//
// Programs are generated from a single ordered listing of named
// routines. The encoded words and the symbol table both derive from
// that listing, so a subroutine label can never drift away from the
// address it names. The memory itself is write-once: the first Write
// populates it and every later call is a no-op.
package progmem
