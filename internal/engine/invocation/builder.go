// Package invocation maps validated run options to the argument lists of each pipeline stage.
package invocation

import (
	"strings"

	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/zerr"
)

// HardwareCounters is the counter set enabled by --enable-hardware-counters.
const HardwareCounters = "BranchMispredictions+CacheMisses+InstructionRetired"

// Benchmark harness flags forwarded after the "--" separator of a run invocation.
const (
	harnessSeparator  = "--"
	flagAllCategories = "--allCategories"
	flagCoreRun       = "--coreRun"
	flagCLI           = "--cli"
	flagCounters      = "--counters"
	flagFilter        = "--filter"
)

// Builder produces tool invocations for one project layout.
type Builder struct {
	layout domain.Layout
}

// New creates a Builder for the given layout.
func New(layout domain.Layout) *Builder {
	return &Builder{layout: layout}
}

// Layout returns the layout the builder was created with.
func (b *Builder) Layout() domain.Layout {
	return b.layout
}

// Command returns the complete invocation for stage.
// framework is only consulted by the run stage.
func (b *Builder) Command(stage domain.Stage, opts domain.RunOptions, framework domain.Framework) (domain.Command, error) {
	args, err := b.Args(stage, opts, framework)
	if err != nil {
		return domain.Command{}, err
	}
	return domain.Command{
		Stage: stage,
		Name:  b.layout.Tool,
		Args:  args,
		Dir:   b.layout.ProjectDir,
	}, nil
}

// Args returns a new argument list for stage.
func (b *Builder) Args(stage domain.Stage, opts domain.RunOptions, framework domain.Framework) ([]string, error) {
	switch stage {
	case domain.StageInfo:
		return []string{"--info"}, nil
	case domain.StageRestore:
		return []string{
			"restore", b.layout.ProjectFile,
			"--packages", b.layout.PackagesDir,
		}, nil
	case domain.StageBuild:
		return []string{
			"build", b.layout.ProjectFile,
			"--configuration", opts.Configuration.String(),
			"--no-restore",
			"/p:NuGetPackageRoot=" + withTrailingSeparator(b.layout.PackagesDir),
			"/p:TargetFrameworks=" + strings.Join(opts.FrameworkNames(), ";"),
		}, nil
	case domain.StageRun:
		if framework == "" {
			return nil, domain.ErrMissingFramework
		}
		args := []string{
			"run",
			"--project", b.layout.ProjectFile,
			"--configuration", opts.Configuration.String(),
			"--framework", framework.String(),
			"--no-restore",
			"--no-build",
			harnessSeparator,
		}
		return append(args, RunArguments(opts)...), nil
	case domain.StageClean:
		return nil, zerr.With(domain.ErrStageHasNoArguments, "stage", stage.String())
	default:
		return nil, zerr.With(domain.ErrUnknownStage, "stage", int(stage))
	}
}

// CleanPaths returns the directories a non-incremental run removes before restoring.
func (b *Builder) CleanPaths() []string {
	return b.layout.ArtifactDirs()
}

// RunArguments returns the benchmark harness arguments of a run invocation.
// Structured flags always precede the user's free-form arguments.
func RunArguments(opts domain.RunOptions) []string {
	var args []string
	if opts.Category != "" {
		args = append(args, flagAllCategories, opts.Category.String())
	}
	if opts.CoreRun != "" {
		args = append(args, flagCoreRun, opts.CoreRun)
	}
	if opts.CLI != "" {
		args = append(args, flagCLI, opts.CLI)
	}
	if opts.EnableHardwareCounters {
		args = append(args, flagCounters, HardwareCounters)
	}
	if len(opts.Filters) > 0 {
		args = append(args, flagFilter)
		args = append(args, opts.Filters...)
	}
	return append(args, opts.BDNArguments...)
}

func withTrailingSeparator(dir string) string {
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, `\`) {
		return dir
	}
	return dir + "/"
}
