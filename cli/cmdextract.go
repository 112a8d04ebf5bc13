package cli

import (
	"fmt"
	"os"
	"time"

	"esprobe/lib/extract"
	"esprobe/lib/fio"
	"esprobe/lib/profile"
	"esprobe/lib/util"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

func ExtractData(path, out, label, subtype string, tableOffset, tableSize int64, compress bool, prof profile.Profile) error {
	start := time.Now()

	fhandle, err := os.Open(path)
	if err != nil {
		return err
	}
	imgHash, err := util.GetFileHash(fhandle)
	if err != nil {
		fhandle.Close()
		return err
	}
	if err = fhandle.Close(); err != nil {
		return err
	}
	fmt.Printf("Image SHA3-256: %s\n\n", util.EncodeHash(imgHash))

	img, records, err := decodeTable(path, tableOffset, tableSize)
	if err != nil {
		return err
	}
	defer img.Close()

	pred := extract.Factory(prof.Naming)
	selector := profile.SubtypeFactoryName
	if label != "" {
		pred = extract.ByLabel(label)
		selector = label
	} else if subtype != "" {
		pred = extract.BySubtype(prof.Naming, subtype)
		selector = subtype
	}

	sub, rec, err := extract.Slice(img.Bytes(), records, pred)
	if err != nil {
		return err
	}

	color.Green("✓ %s partition found at offset 0x%08X", selector, rec.Offset)
	fmt.Printf("  Size: %s\n", humanize.IBytes(uint64(rec.Size)))
	fmt.Printf("  SHA3-256: %s\n", util.EncodeHash(util.GetDataHash(sub)))

	written, err := fio.WriteArtifact(out, sub, compress)
	if err != nil {
		return err
	}
	fmt.Printf("  Extracted to: %s\n", written)
	fmt.Println("Extracted in: ", time.Since(start))
	return nil
}
