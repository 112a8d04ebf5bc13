package extract

import (
	"fmt"

	"esprobe/lib/cnst"
	"esprobe/lib/profile"
	"esprobe/lib/structs"
)

// Predicate selects a partition record. The first matching record wins.
type Predicate func(structs.PartitionRecord) bool

func BySubtype(naming profile.Naming, name string) Predicate {
	return func(rec structs.PartitionRecord) bool {
		return naming.SubtypeName(rec.TypeCode, rec.SubtypeCode) == name
	}
}

func ByLabel(label string) Predicate {
	return func(rec structs.PartitionRecord) bool {
		return rec.Label == label
	}
}

func Factory(naming profile.Naming) Predicate {
	return BySubtype(naming, profile.SubtypeFactoryName)
}

// Find returns the first record satisfying pred, or cnst.ErrNoPartition.
func Find(records []structs.PartitionRecord, pred Predicate) (structs.PartitionRecord, error) {
	for _, rec := range records {
		if pred(rec) {
			return rec, nil
		}
	}
	return structs.PartitionRecord{}, cnst.ErrNoPartition
}

// Slice selects a record and copies its exact [offset, offset+size) byte
// range out of the flash image. A range reaching past the image bounds is
// an error, never a silent clamp.
func Slice(image []byte, records []structs.PartitionRecord, pred Predicate) ([]byte, structs.PartitionRecord, error) {
	rec, err := Find(records, pred)
	if err != nil {
		return nil, rec, err
	}
	if rec.End() > uint64(len(image)) {
		return nil, rec, fmt.Errorf("%w: partition %q spans [%#x, %#x) but image has %#x bytes",
			cnst.ErrOutOfRange, rec.Label, rec.Offset, rec.End(), len(image))
	}
	sub := make([]byte, rec.Size)
	copy(sub, image[rec.Offset:rec.End()])
	return sub, rec, nil
}
