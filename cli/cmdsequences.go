package cli

import (
	"fmt"
	"strings"

	"esprobe/lib/profile"
	"esprobe/lib/scan"
	"esprobe/lib/util"

	"github.com/fatih/color"
)

func SequencesData(path string, isImage bool, tableOffset, tableSize int64, maxShown int, prof profile.Profile) error {
	data, name, err := loadSubImage(path, isImage, tableOffset, tableSize, prof)
	if err != nil {
		return err
	}

	fmt.Printf("Analyzing: %s\n\n", name)

	opset := prof.Opcodes.Set()
	var totalSites int
	for _, key := range prof.KeyCommands {
		sites := scan.FindSequences(data, key.Code, opset, prof.Seq)
		if len(sites) == 0 {
			continue
		}
		totalSites += len(sites)

		color.Cyan("0x%02X - %s", key.Code, key.Desc)
		fmt.Println(strings.Repeat("-", 70))

		shown := sites
		if len(shown) > maxShown {
			shown = shown[:maxShown]
		}
		for _, site := range shown {
			fmt.Printf("  @0x%08X\n", site.Offset)
			fmt.Printf("    Before: %s\n", util.HexBytes(site.Before))
			fmt.Printf("    After:  %s\n", util.HexBytes(site.After))
		}
		if len(sites) > maxShown {
			fmt.Printf("  ... and %d more occurrences\n", len(sites)-maxShown)
		}
		fmt.Println()
	}

	if totalSites == 0 {
		fmt.Println("No candidate command sequences found")
		return nil
	}
	color.Green("✓ sequence search complete")
	return nil
}
