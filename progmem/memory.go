package progmem

import (
	"log"
	"sync"
)

const (
	MEMORY_SIZE = 256 // Number of addressable instruction words.
)

// Memory is the program memory simulation: the fixed store of encoded
// instruction words the fetch stage reads from every cycle. It is
// write-once; after the first Write every operation is read-only and
// safe to share between readers.
type Memory struct {
	Verbose bool // Set to enable verbose logging.

	once sync.Once
	data [MEMORY_SIZE]Word
}

// NewMemory creates an empty program memory. Every slot reads back as
// the no-op word until a program is written.
func NewMemory() (mem *Memory) {
	mem = &Memory{}
	return
}

// Write populates the memory with the encoded words of prog, starting
// at address zero. Only the first call has any effect; later calls
// return without touching a slot, whatever their argument. The once
// latch also orders the population before any read that observes it
// when callers race.
func (mem *Memory) Write(prog *Program) {
	mem.once.Do(func() {
		if mem.Verbose {
			log.Printf("progmem: write %d words", prog.Len())
		}
		for address, word := range prog.Words() {
			mem.data[address] = word
		}
	})
}

// Read returns the instruction word at address. The address domain is
// exactly [0, MEMORY_SIZE) by its own width; the fallback to the no-op
// word stays in place for any wider address a caller may narrow from.
// A no-op result is indistinguishable from an explicitly encoded nop.
func (mem *Memory) Read(address uint8) Word {
	if int(address) < MEMORY_SIZE {
		return mem.data[address]
	}
	return Nop
}
