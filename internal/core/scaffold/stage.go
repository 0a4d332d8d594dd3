package scaffold

// Stage is one step of a scaffold run.
type Stage string

// Stages in execution order.
const (
	StageInit                Stage = "init"
	StageAllocateRoot        Stage = "allocate-root"
	StageScaffoldFrontends   Stage = "scaffold-frontends"
	StageScaffoldDatabase    Stage = "scaffold-database"
	StageInitGit             Stage = "init-git"
	StageInstallDependencies Stage = "install-dependencies"
	StageFormatFiles         Stage = "format-files"
	StageDone                Stage = "done"
)

// Reporter receives progress while a run executes. Implementations must
// be safe for use from the goroutine calling Run.
type Reporter interface {
	StageStarted(name string, index, total int)
	StageFinished(name string, err error)
	Warn(msg string)
}

type nopReporter struct{}

func (nopReporter) StageStarted(string, int, int) {}
func (nopReporter) StageFinished(string, error)   {}
func (nopReporter) Warn(string)                   {}

// Step is the log entry of a completed stage.
type Step struct {
	Stage   Stage
	Skipped bool
	Detail  string
}
