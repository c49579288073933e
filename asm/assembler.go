// Package asm implements a small single pass assembler for the 24-bit
// instruction set. Each label starts a named routine, so the assembled
// output carries its own subroutine address ranges; `.equ` defines
// equates, and $( ... ) expressions are evaluated at assembly time.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/avremu/avremu/internal"
	"github.com/avremu/avremu/isa"
	"github.com/avremu/avremu/progmem"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":      "0",
	"MEMORY_SIZE": fmt.Sprintf("%v", progmem.MEMORY_SIZE),
}

// opMap maps mnemonics to opcodes.
var opMap = map[string]isa.OpCode{
	"nop":  isa.NOP,
	"ldi":  isa.LDI,
	"mov":  isa.MOV,
	"out":  isa.OUT,
	"in":   isa.IN,
	"st":   isa.ST,
	"ld":   isa.LD,
	"clr":  isa.CLR,
	"and":  isa.AND,
	"andi": isa.ANDI,
	"or":   isa.OR,
	"ori":  isa.ORI,
	"xor":  isa.XOR,
	"xori": isa.XORI,
	"add":  isa.ADD,
	"addi": isa.ADDI,
	"sub":  isa.SUB,
	"subi": isa.SUBI,
	"inc":  isa.INC,
	"dec":  isa.DEC,
	"cp":   isa.CP,
	"cpi":  isa.CPI,
	"jmp":  isa.JMP,
	"breq": isa.BREQ,
	"brne": isa.BRNE,
	"call": isa.CALL,
	"ret":  isa.RET,
	"push": isa.PUSH,
	"pop":  isa.POP,
}

// Assembler is a single pass assembler producing a program listing.
type Assembler struct {
	Verbose bool            // If set, verbosely logs the assembler actions.
	Listing progmem.Listing // Parsed listing, one block per label.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word, truncated to its low
// 8 bits. Operands are fixed 8-bit fields; wider values lose their
// upper bits here rather than raising an error.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, verr := strconv.ParseInt(str, 0, 33)
		if verr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(v64))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine parses a single line into opcode words, handling `.equ`,
// equate substitution and leading labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	line = strings.ReplaceAll(line, ",", " ")
	line = strings.ReplaceAll(line, "\t", " ")

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		err = asm.beginBlock(label)
		if err != nil {
			return
		}
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// beginBlock starts a new routine at the current end of the listing.
func (asm *Assembler) beginBlock(label string) (err error) {
	for _, block := range asm.Listing {
		if block.Name == label {
			return ErrLabelDuplicate
		}
	}

	asm.Listing = append(asm.Listing, progmem.Block{Name: label})
	return
}

// parseWords evaluates the words of a line as a single instruction and
// appends it to the current block.
func (asm *Assembler) parseWords(words []string) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	if len(words) > 3 {
		err = ErrOpcodeExtraArgs
		return
	}

	if len(asm.Listing) == 0 {
		err = ErrLabelNone
		return
	}

	entry := progmem.Entry{Op: op}
	targets := [2](*uint8){&entry.Op1, &entry.Op2}
	for n, word := range words[1:] {
		var value uint8
		value, err = asm.valueOf(word)
		if err != nil {
			// Not a number: treat operand 1 as a jump label,
			// resolved to a routine start address at link time.
			if n != 0 {
				return
			}
			entry.Label = word
			err = nil
			continue
		}
		*targets[n] = value
	}

	block := &asm.Listing[len(asm.Listing)-1]
	block.Entries = append(block.Entries, entry)

	return
}

// Parse parses an input stream into a linked Program.
func (asm *Assembler) Parse(input io.Reader) (prog *progmem.Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Listing = asm.Listing[:0]
	asm.Equate = maps.Clone(sysEquate)
	for key, value := range internal.IterSeq2Concat(isa.Defines(), maps.All(asm.predefine)) {
		asm.Equate[key] = value
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words)
		if err != nil {
			return
		}
	}

	prog, err = asm.Listing.Link()

	return
}
