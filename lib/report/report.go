package report

import (
	"encoding/json"
	"os"
	"sort"

	"esprobe/lib/structs"
	"esprobe/lib/util"
)

// Build assembles the analysis report from the three scan passes. Driver
// hits and strings are sorted here so the report is stable across runs.
func Build(name string, data []byte, drivers map[string]int, strs []string, opcodes []structs.OpcodeCount) structs.AnalysisReport {
	var rep structs.AnalysisReport
	rep.Artifact = name
	rep.ArtifactHash = util.EncodeHash(util.GetDataHash(data))
	rep.Size = int64(len(data))

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rep.Drivers = append(rep.Drivers, structs.DriverHit{Name: name, Count: drivers[name]})
	}

	rep.Strings = append([]string{}, strs...)
	sort.Strings(rep.Strings)
	rep.Opcodes = opcodes
	return rep
}

func Write(path string, rep structs.AnalysisReport) error {
	reportData, err := json.MarshalIndent(rep, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, reportData, os.ModePerm)
}
