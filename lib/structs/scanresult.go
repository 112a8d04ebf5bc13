package structs

// OpcodeCount is a raw byte-value occurrence count for one opcode.
type OpcodeCount struct {
	Opcode byte   `json:"opcode"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// SequenceSite is one candidate command-sequence occurrence with its
// surrounding context windows.
type SequenceSite struct {
	Offset int    `json:"offset"`
	Before []byte `json:"before"`
	After  []byte `json:"after"`
}

// DriverHit is one controller signature with its occurrence count.
type DriverHit struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
