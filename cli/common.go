package cli

import (
	"path/filepath"

	"esprobe/lib/extract"
	"esprobe/lib/fio"
	"esprobe/lib/parser"
	"esprobe/lib/profile"
	"esprobe/lib/structs"
)

func decodeTable(path string, tableOffset, tableSize int64) (*structs.FlashImage, []structs.PartitionRecord, error) {
	img, err := fio.LoadImage(path)
	if err != nil {
		return nil, nil, err
	}
	region, err := parser.Region(img.Bytes(), tableOffset, tableSize)
	if err != nil {
		img.Close()
		return nil, nil, err
	}
	return img, parser.Decode(region), nil
}

// loadSubImage resolves the buffer the scanners run over: either FILE is an
// already-extracted sub-image artifact, or a full flash image whose factory
// app partition is decoded and sliced out first.
func loadSubImage(path string, isImage bool, tableOffset, tableSize int64, prof profile.Profile) ([]byte, string, error) {
	if !isImage {
		data, err := fio.ReadArtifact(path)
		return data, filepath.Base(path), err
	}

	img, records, err := decodeTable(path, tableOffset, tableSize)
	if err != nil {
		return nil, "", err
	}
	defer img.Close()

	sub, rec, err := extract.Slice(img.Bytes(), records, extract.Factory(prof.Naming))
	if err != nil {
		return nil, "", err
	}
	return sub, rec.Label, nil
}
