package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/avremu/avremu/asm"
	"github.com/avremu/avremu/progmem"
)

func main() {
	var compile string
	var all bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble (default: built-in blink demo)")
	flag.BoolVar(&all, "a", false, "Dump all of program memory, not just the program")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	prog := progmem.Blink()

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		a := &asm.Assembler{Verbose: verbose}
		prog, err = a.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	mem := progmem.NewMemory()
	mem.Verbose = verbose
	mem.Write(prog)

	symbols := prog.Symbols()

	end := prog.End()
	if all {
		end = progmem.MEMORY_SIZE
	}

	for n := range end {
		address := uint8(n)
		word := mem.Read(address)
		fmt.Printf("%02x: %06x  %-20v ; %v\n",
			address, uint32(word), word, symbols.SubroutineName(address))
	}
}
