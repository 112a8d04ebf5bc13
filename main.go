package main

import (
	"fmt"
	"os"

	"esprobe/cli"
	"esprobe/lib/cnst"
	"esprobe/lib/profile"
	"esprobe/lib/util"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
)

func main() {
	app := kingpin.New("esprobe", "ESP32 flash image partition decoder and TFT display-config prober")
	app.Version("esprobe v1.2")
	memopt := app.Flag(cnst.FlagLowResource, "Low resource mode, mmaps images instead of reading them into memory").Short(cnst.FlagLowResourceShort).Default("false").Bool()
	tableOffset := app.Flag(cnst.FlagTableOffset, "Partition table offset within the flash image (decimal or 0x hex)").Short(cnst.FlagTableOffsetShort).Default("0x8000").String()
	tableSize := app.Flag(cnst.FlagTableSize, "Partition table window size (decimal or 0x hex)").Short(cnst.FlagTableSizeShort).Default("0xC00").String()

	cmdtable := app.Command(cnst.CmdTable, "Decode and print the partition table of a flash image")
	tablePath := cmdtable.Arg(cnst.OperandFile, "Path of the flash image").Required().String()

	cmdextract := app.Command(cnst.CmdExtract, "Extract a partition from a flash image")
	extractPath := cmdextract.Arg(cnst.OperandFile, "Path of the flash image").Required().String()
	out := cmdextract.Flag(cnst.FlagOut, "Output path for the extracted partition").Short(cnst.FlagOutShort).Default(cnst.DefaultArtifactName).String()
	zstdOpt := cmdextract.Flag(cnst.FlagZstd, "Compress the artifact with zstd").Short(cnst.FlagZstdShort).Default("false").Bool()
	label := cmdextract.Flag(cnst.FlagLabel, "Select the partition by label instead of the factory app").Short(cnst.FlagLabelShort).String()
	subtype := cmdextract.Flag(cnst.FlagSubtype, "Select the partition by subtype name instead of the factory app").Short(cnst.FlagSubtypeShort).String()

	cmdanalyze := app.Command(cnst.CmdAnalyze, "Scan a firmware sub-image for display-controller configuration")
	analyzePath := cmdanalyze.Arg(cnst.OperandFile, "Path of the sub-image (or full flash image with --image)").Required().String()
	analyzeImage := cmdanalyze.Flag(cnst.FlagImage, "Treat FILE as a full flash image, extract the factory app first").Short(cnst.FlagImageShort).Default("false").Bool()
	reportPath := cmdanalyze.Flag(cnst.FlagReport, "Write a JSON analysis report to this path").Short(cnst.FlagReportShort).String()

	cmdseq := app.Command(cnst.CmdSequences, "Locate candidate display init command sequences")
	seqPath := cmdseq.Arg(cnst.OperandFile, "Path of the sub-image (or full flash image with --image)").Required().String()
	seqImage := cmdseq.Flag(cnst.FlagImage, "Treat FILE as a full flash image, extract the factory app first").Short(cnst.FlagImageShort).Default("false").Bool()
	maxShown := cmdseq.Flag(cnst.FlagMax, "Maximum sites shown per opcode").Short(cnst.FlagMaxShort).Default("5").Int()

	parsed := kingpin.MustParse(app.Parse(os.Args[1:]))
	cnst.MEMOPT = *memopt

	if cnst.MEMOPT {
		color.Green("🍃 running in LOW RESOURCE mode 🍃")
	}

	toff, err := util.ParseOffset(*tableOffset)
	handle(err)
	tsize, err := util.ParseOffset(*tableSize)
	handle(err)

	prof := profile.CYD()

	switch parsed {
	case cmdtable.FullCommand():
		err = cli.TableData(*tablePath, toff, tsize, prof)
	case cmdextract.FullCommand():
		err = cli.ExtractData(*extractPath, *out, *label, *subtype, toff, tsize, *zstdOpt, prof)
	case cmdanalyze.FullCommand():
		err = cli.AnalyzeData(*analyzePath, *analyzeImage, toff, tsize, *reportPath, prof)
	case cmdseq.FullCommand():
		err = cli.SequencesData(*seqPath, *seqImage, toff, tsize, *maxShown, prof)
	}

	handle(err)
}

func handle(err error) {
	if err != nil {
		fmt.Printf("\n\n %v \n\n", err)
		os.Exit(1)
	}
}
