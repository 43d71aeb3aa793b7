package domain

// Stage is one discrete step of the pipeline.
type Stage int

const (
	// StageClean removes packages and build artifacts. It never invokes the tool.
	StageClean Stage = iota
	// StageInfo prints the tool's environment information.
	StageInfo
	// StageRestore restores package dependencies.
	StageRestore
	// StageBuild builds the project for all frameworks at once.
	StageBuild
	// StageRun runs the benchmarks for a single framework.
	StageRun
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageClean:
		return "clean"
	case StageInfo:
		return "info"
	case StageRestore:
		return "restore"
	case StageBuild:
		return "build"
	case StageRun:
		return "run"
	default:
		return "unknown"
	}
}
