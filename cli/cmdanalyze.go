package cli

import (
	"fmt"
	"strings"

	"esprobe/lib/profile"
	"esprobe/lib/report"
	"esprobe/lib/scan"
	"esprobe/lib/structs"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

const maxShownStrings = 20

func AnalyzeData(path string, isImage bool, tableOffset, tableSize int64, reportPath string, prof profile.Profile) error {
	data, name, err := loadSubImage(path, isImage, tableOffset, tableSize, prof)
	if err != nil {
		return err
	}

	fmt.Printf("Analyzing: %s (%s bytes)\n\n", name, humanize.Comma(int64(len(data))))

	bar := progressbar.Default(4, "Scanning....")
	drivers := scan.FindSignatures(data, prof.Drivers)
	bar.Add(1)
	relevant := scan.FindStrings(data, prof.Keywords)
	bar.Add(1)
	opcodes := scan.FindOpcodes(data, prof.Opcodes)
	bar.Add(1)
	rep := report.Build(name, data, drivers, relevant, opcodes)
	bar.Add(1)
	bar.Finish()
	if err = bar.Close(); err != nil {
		return err
	}
	fmt.Println()

	printDrivers(rep.Drivers)
	printStrings(rep.Strings)
	printOpcodes(rep.Opcodes)
	printPins(prof.Pins)

	if reportPath != "" {
		if err = report.Write(reportPath, rep); err != nil {
			return err
		}
		color.Green("✓ report written to %s", reportPath)
	}
	return nil
}

func printDrivers(drivers []structs.DriverHit) {
	section("TFT Driver Strings")
	if len(drivers) == 0 {
		fmt.Println("  No driver strings found")
		return
	}
	for _, hit := range drivers {
		fmt.Printf("  ✓ %s: %d occurrence(s)\n", hit.Name, hit.Count)
	}
}

func printStrings(relevant []string) {
	section("TFT Configuration Strings")
	if len(relevant) == 0 {
		fmt.Println("  No relevant strings found")
		return
	}
	shown := relevant
	if len(shown) > maxShownStrings {
		shown = shown[:maxShownStrings]
	}
	for _, s := range shown {
		fmt.Printf("  • %s\n", s)
	}
	if len(relevant) > maxShownStrings {
		fmt.Printf("  ... and %d more\n", len(relevant)-maxShownStrings)
	}
}

func printOpcodes(opcodes []structs.OpcodeCount) {
	section("Display Initialization Commands")
	if len(opcodes) == 0 {
		fmt.Println("  No init commands found")
		return
	}
	for _, oc := range opcodes {
		fmt.Printf("  0x%02X (%s): %d occurrence(s)\n", oc.Opcode, oc.Name, oc.Count)
	}
}

func printPins(pins []profile.Pin) {
	section("Known Board Pin Configuration")
	for _, pin := range pins {
		fmt.Printf("  GPIO %2d = %s\n", pin.GPIO, pin.Role)
	}
}

func section(title string) {
	fmt.Println()
	color.Cyan("%s:", title)
	fmt.Println(strings.Repeat("-", 70))
}
