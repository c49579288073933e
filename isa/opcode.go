// Package isa defines the instruction set constants for the simulated
// microcontroller: opcodes, CPU register ids, I/O space addresses, and
// port pin numbers.
package isa

// OpCode is the 8-bit operation selector of an instruction word.
// The zero value is the no-op, so cleared program memory decodes as nop.
type OpCode uint8

//go:generate go tool stringer -linecomment -type=OpCode
const (
	NOP  = OpCode(0x00) // nop
	LDI  = OpCode(0x01) // ldi
	MOV  = OpCode(0x02) // mov
	OUT  = OpCode(0x03) // out
	IN   = OpCode(0x04) // in
	ST   = OpCode(0x05) // st
	LD   = OpCode(0x06) // ld
	CLR  = OpCode(0x07) // clr
	AND  = OpCode(0x08) // and
	ANDI = OpCode(0x09) // andi
	OR   = OpCode(0x0a) // or
	ORI  = OpCode(0x0b) // ori
	XOR  = OpCode(0x0c) // xor
	XORI = OpCode(0x0d) // xori
	ADD  = OpCode(0x0e) // add
	ADDI = OpCode(0x0f) // addi
	SUB  = OpCode(0x10) // sub
	SUBI = OpCode(0x11) // subi
	INC  = OpCode(0x12) // inc
	DEC  = OpCode(0x13) // dec
	CP   = OpCode(0x14) // cp
	CPI  = OpCode(0x15) // cpi
	JMP  = OpCode(0x16) // jmp
	BREQ = OpCode(0x17) // breq
	BRNE = OpCode(0x18) // brne
	CALL = OpCode(0x19) // call
	RET  = OpCode(0x1a) // ret
	PUSH = OpCode(0x1b) // push
	POP  = OpCode(0x1c) // pop
)
