package host

import (
	"os/exec"
	"runtime"
	"slices"

	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuntimeValidator = (*RuntimeValidator)(nil)

// SupportedOS lists the operating systems the benchmarks can run on.
var SupportedOS = []string{"linux", "darwin", "windows"}

// RuntimeValidator checks the operating system and the availability of the build tool.
type RuntimeValidator struct {
	goos     string
	lookPath func(string) (string, error)
}

// NewRuntimeValidator creates a RuntimeValidator for the current host.
func NewRuntimeValidator() *RuntimeValidator {
	return &RuntimeValidator{goos: runtime.GOOS, lookPath: exec.LookPath}
}

// Validate fails when the host OS is unsupported or tool is not executable.
func (v *RuntimeValidator) Validate(tool string) error {
	if !slices.Contains(SupportedOS, v.goos) {
		return zerr.With(domain.ErrUnsupportedRuntime, "os", v.goos)
	}

	if _, err := v.lookPath(tool); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolNotFound.Error()), "tool", tool)
	}
	return nil
}
