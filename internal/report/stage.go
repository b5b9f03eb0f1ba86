package report

// Stage is a step of a report run. A run moves forward only and never revisits a stage.
type Stage int

const (
	StageInit Stage = iota
	StageTreeRendered
	StageStructuralListed
	StageDetailedListed
	StageWritten
)

var stageNames = map[Stage]string{
	StageInit:             "init",
	StageTreeRendered:     "tree rendered",
	StageStructuralListed: "structural listed",
	StageDetailedListed:   "detailed listed",
	StageWritten:          "written",
}

func (stage Stage) String() string {
	if name, known := stageNames[stage]; known {
		return name
	}
	return "unknown"
}
