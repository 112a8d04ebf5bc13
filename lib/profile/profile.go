package profile

import "fmt"

// Profile bundles every fixed lookup table the scanners need for one
// hardware family. Commands receive it explicitly so the scan code stays
// reusable against other boards and command protocols.
type Profile struct {
	Naming      Naming
	Drivers     []string
	Keywords    []string
	Opcodes     OpcodeTable
	KeyCommands []KeyCommand
	Pins        []Pin
	Seq         SeqWindow
}

// Naming maps raw partition type/subtype codes to their conventional names.
type Naming struct {
	Types    map[byte]string
	Subtypes map[byte]map[byte]string
}

// TypeName resolves a type code, falling back to its raw hex value.
func (n Naming) TypeName(t byte) string {
	if name, ok := n.Types[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", t)
}

// SubtypeName resolves a subtype code. Subtype meaning depends on the type,
// unmapped codes fall back to raw hex.
func (n Naming) SubtypeName(t, st byte) string {
	if name, ok := n.Subtypes[t][st]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", st)
}

// Opcode is one display-controller command byte with its canonical name.
type Opcode struct {
	Code byte
	Name string
}

// OpcodeTable is kept ordered by code so scan output is deterministic.
type OpcodeTable []Opcode

func (t OpcodeTable) Set() OpcodeSet {
	set := make(OpcodeSet, len(t))
	for _, op := range t {
		set[op.Code] = struct{}{}
	}
	return set
}

type OpcodeSet map[byte]struct{}

func (s OpcodeSet) Has(b byte) bool {
	_, ok := s[b]
	return ok
}

// KeyCommand is an anchor opcode worth inspecting for full init sequences.
type KeyCommand struct {
	Code byte
	Desc string
}

type Pin struct {
	GPIO int
	Role string
}

// SeqWindow holds the command-sequence heuristic thresholds. The defaults
// are empirically tuned for the ILI9341 command protocol; other protocol
// families can pass their own.
type SeqWindow struct {
	Before   int  // context bytes captured before an occurrence
	After    int  // context bytes captured after an occurrence
	Probe    int  // following bytes inspected by the classifier
	ParamMax byte // values below this read as short parameter bytes
}

var DefaultSeqWindow = SeqWindow{Before: 10, After: 20, Probe: 5, ParamMax: 10}
