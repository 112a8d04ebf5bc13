package parser

import (
	"bytes"
	"encoding/binary"

	"esprobe/lib/cnst"
	"esprobe/lib/structs"
)

const (
	// EntrySize is the fixed stride of one partition table slot
	EntrySize = 32
	// Magic marks a valid ESP32 partition entry
	Magic = 0x50AA

	labelStart = 12
	labelEnd   = 28
)

// Decode walks the table region in fixed 32-byte strides and returns every
// valid record in table order. Strides with a wrong magic are skipped
// silently, the table may contain filler regions. Iteration stops at the
// first 0xFF 0xFF slot (unerased flash sentinel) or when fewer than a full
// stride remains. Decode never fails, an empty result is a legitimate
// outcome.
func Decode(table []byte) []structs.PartitionRecord {
	records := []structs.PartitionRecord{}
	for base := 0; base+EntrySize <= len(table); base += EntrySize {
		entry := table[base : base+EntrySize]
		if entry[0] == 0xFF && entry[1] == 0xFF {
			break
		}
		if binary.LittleEndian.Uint16(entry[0:2]) != Magic {
			continue
		}

		var rec structs.PartitionRecord
		rec.TypeCode = entry[2]
		rec.SubtypeCode = entry[3]
		rec.Offset = binary.LittleEndian.Uint32(entry[4:8])
		rec.Size = binary.LittleEndian.Uint32(entry[8:12])
		rec.Label = decodeLabel(entry[labelStart:labelEnd])
		rec.Flags = binary.LittleEndian.Uint32(entry[28:32])

		records = append(records, rec)
	}
	return records
}

// Encode is the inverse of Decode for a single record. Labels longer than
// the 16-byte field are truncated, shorter ones are NUL padded.
func Encode(rec structs.PartitionRecord) []byte {
	entry := make([]byte, EntrySize)
	binary.LittleEndian.PutUint16(entry[0:2], Magic)
	entry[2] = rec.TypeCode
	entry[3] = rec.SubtypeCode
	binary.LittleEndian.PutUint32(entry[4:8], rec.Offset)
	binary.LittleEndian.PutUint32(entry[8:12], rec.Size)
	copy(entry[labelStart:labelEnd], rec.Label)
	binary.LittleEndian.PutUint32(entry[28:32], rec.Flags)
	return entry
}

// Region slices the partition table window out of a full flash image.
// A window reaching past the end of the image is truncated, the decoder
// copes with partial strides. A window starting past the end is an error.
func Region(image []byte, offset, size int64) ([]byte, error) {
	if offset < 0 || offset >= int64(len(image)) {
		return nil, cnst.ErrTableRegion
	}
	end := offset + size
	if end > int64(len(image)) {
		end = int64(len(image))
	}
	return image[offset:end], nil
}

// decodeLabel NUL-truncates the raw label field and drops any non-ASCII
// bytes instead of failing, mirroring the permissive decode discipline of
// the rest of the table parser.
func decodeLabel(field []byte) string {
	if i := bytes.IndexByte(field, 0x00); i >= 0 {
		field = field[:i]
	}
	label := make([]byte, 0, len(field))
	for _, b := range field {
		if b < 0x80 {
			label = append(label, b)
		}
	}
	return string(label)
}
