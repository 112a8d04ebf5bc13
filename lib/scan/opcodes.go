package scan

import (
	"esprobe/lib/profile"
	"esprobe/lib/structs"
)

// FindOpcodes counts raw byte-value occurrences for every opcode in the
// table, with no positional filtering. Zero counts are omitted; results
// follow table order.
func FindOpcodes(buf []byte, table profile.OpcodeTable) []structs.OpcodeCount {
	var histogram [256]int
	for _, b := range buf {
		histogram[b]++
	}

	counts := []structs.OpcodeCount{}
	for _, op := range table {
		if c := histogram[op.Code]; c > 0 {
			counts = append(counts, structs.OpcodeCount{Opcode: op.Code, Name: op.Name, Count: c})
		}
	}
	return counts
}
