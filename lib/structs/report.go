package structs

type AnalysisReport struct {
	Artifact     string        `json:"artifact"`
	ArtifactHash string        `json:"artifact_hash"`
	Size         int64         `json:"size"`
	Drivers      []DriverHit   `json:"drivers"`
	Strings      []string      `json:"strings"`
	Opcodes      []OpcodeCount `json:"opcodes"`
}
