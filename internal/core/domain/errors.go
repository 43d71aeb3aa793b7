package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrNoFrameworks is returned when no target framework was given.
	ErrNoFrameworks = zerr.New("at least one target framework is required")

	// ErrInvalidFrameworks is returned when one or more frameworks are not supported on this host.
	ErrInvalidFrameworks = zerr.New("invalid choice(s)")

	// ErrUnknownConfiguration is returned when the build configuration is not recognized.
	ErrUnknownConfiguration = zerr.New("unknown configuration")

	// ErrInvalidIncremental is returned when --incremental is neither "yes" nor "no".
	ErrInvalidIncremental = zerr.New("invalid incremental value, expected 'yes' or 'no'")

	// ErrInvalidCategory is returned when the benchmark category is not recognized.
	ErrInvalidCategory = zerr.New("invalid category, expected 'coreclr' or 'corefx'")

	// ErrFileNotFound is returned when a path option does not reference an existing file.
	ErrFileNotFound = zerr.New("file does not exist")

	// ErrInvalidArguments is returned when the pass-through argument string cannot be tokenized.
	ErrInvalidArguments = zerr.New("failed to parse benchmark arguments")

	// ErrMissingFramework is returned when a run invocation is requested without a framework.
	ErrMissingFramework = zerr.New("run stage requires a target framework")

	// ErrStageHasNoArguments is returned when arguments are requested for a stage that does not invoke the tool.
	ErrStageHasNoArguments = zerr.New("stage does not invoke the external tool")

	// ErrUnknownStage is returned for a stage value outside the known set.
	ErrUnknownStage = zerr.New("unknown stage")

	// ErrStageFailed is returned when a pipeline stage fails.
	ErrStageFailed = zerr.New("stage failed")

	// ErrCleanFailed is returned when a build artifact directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build artifacts")

	// ErrUnsupportedRuntime is returned when the host cannot run the benchmarks.
	ErrUnsupportedRuntime = zerr.New("unsupported runtime")

	// ErrToolNotFound is returned when the external build tool cannot be located.
	ErrToolNotFound = zerr.New("build tool not found")

	// ErrFailedToGetRoot is returned when the repository root cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to determine repository root")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrProcessStartFailed is returned when the external process cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrAborted signals a user-initiated early exit, such as a help request. It is not a failure.
	ErrAborted = zerr.New("aborted")
)

// ValidationError reports bad or missing user input.
// Re-running with corrected arguments is the only recovery.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given option.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("argument %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProcessError reports an external process that exited with a non-zero status.
type ProcessError struct {
	Command  Command
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command.String(), e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
