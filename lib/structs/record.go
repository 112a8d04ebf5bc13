package structs

// PartitionRecord is one decoded entry of the ESP32 partition table.
type PartitionRecord struct {
	Label       string `json:"label"`
	TypeCode    byte   `json:"type"`
	SubtypeCode byte   `json:"subtype"`
	Offset      uint32 `json:"offset"`
	Size        uint32 `json:"size"`
	Flags       uint32 `json:"flags"`
}

// End returns the exclusive end offset of the partition within the image.
// Computed in uint64 so a record placed near the 4GB boundary cannot wrap.
func (r PartitionRecord) End() uint64 {
	return uint64(r.Offset) + uint64(r.Size)
}
