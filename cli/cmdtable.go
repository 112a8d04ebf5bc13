package cli

import (
	"fmt"
	"strings"

	"esprobe/lib/profile"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

func TableData(path string, tableOffset, tableSize int64, prof profile.Profile) error {
	img, records, err := decodeTable(path, tableOffset, tableSize)
	if err != nil {
		return err
	}
	defer img.Close()

	if len(records) == 0 {
		color.Red("✗ no valid partitions found")
		return nil
	}

	fmt.Printf("Found %d partition(s):\n\n", len(records))
	fmt.Printf("%-16s %-8s %-12s %-12s %-10s %s\n", "Name", "Type", "Subtype", "Offset", "Size", "Flags")
	fmt.Println(strings.Repeat("-", 70))

	for _, rec := range records {
		fmt.Printf("%-16s %-8s %-12s 0x%08X  %-10s 0x%08X\n",
			rec.Label,
			prof.Naming.TypeName(rec.TypeCode),
			prof.Naming.SubtypeName(rec.TypeCode, rec.SubtypeCode),
			rec.Offset,
			humanize.IBytes(uint64(rec.Size)),
			rec.Flags,
		)
	}
	return nil
}
