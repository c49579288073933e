package progmem

// SUBROUTINE_UNKNOWN is returned for addresses outside every range.
const SUBROUTINE_UNKNOWN = "Unknown"

// SymbolRange attributes the half-open address span [Start, End) to one
// named subroutine.
type SymbolRange struct {
	Start int
	End   int
	Name  string
}

// SymbolTable is an ordered list of non-overlapping subroutine ranges,
// sorted ascending by start address. Lookup walks the table in order,
// so extending a program means adding entries, never touching control
// flow.
type SymbolTable []SymbolRange

// SubroutineName returns the name of the first range containing
// address, or the Unknown sentinel when no range does.
func (table SymbolTable) SubroutineName(address uint8) string {
	for _, sym := range table {
		if int(address) >= sym.Start && int(address) < sym.End {
			return sym.Name
		}
	}

	return SUBROUTINE_UNKNOWN
}
