// Package sequencer runs the pipeline stages in their mandated order.
package sequencer

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/microbench/internal/engine/invocation"
	"go.trai.ch/zerr"
)

// Section header texts.
const (
	CleanHeader   = "Removing packages, bin and obj folders."
	RestoreHeader = "Restoring .NET micro benchmarks"
	buildHeader   = "Building .NET micro benchmarks for '%s'"
	runHeader     = "Running .NET micro benchmarks for '%s'"
)

// Sequencer drives the stages of one run, stopping at the first failure.
type Sequencer struct {
	builder  *invocation.Builder
	executor ports.Executor
	remover  ports.Remover
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new Sequencer with the given dependencies.
func New(
	builder *invocation.Builder,
	executor ports.Executor,
	remover ports.Remover,
	logger ports.Logger,
	tracer ports.Tracer,
) *Sequencer {
	return &Sequencer{
		builder:  builder,
		executor: executor,
		remover:  remover,
		logger:   logger,
		tracer:   tracer,
	}
}

// Run executes info, the optional clean, restore, build and one run per framework.
// Nothing produced by completed stages is rolled back when a later stage fails.
func (s *Sequencer) Run(ctx context.Context, opts domain.RunOptions) error {
	s.tracer.EmitPlan(ctx, Plan(opts))

	if err := s.invoke(ctx, domain.StageInfo, opts, ""); err != nil {
		return err
	}

	if !opts.Incremental {
		s.header(CleanHeader)
		if err := s.clean(ctx); err != nil {
			return err
		}
	}

	s.header(RestoreHeader)
	if err := s.invoke(ctx, domain.StageRestore, opts, ""); err != nil {
		return err
	}

	s.header(BuildHeader(opts.Frameworks))
	if err := s.invoke(ctx, domain.StageBuild, opts, ""); err != nil {
		return err
	}

	for _, framework := range opts.Frameworks {
		s.header(RunHeader(framework))
		if err := s.invoke(ctx, domain.StageRun, opts, framework); err != nil {
			return err
		}
	}

	return nil
}

func (s *Sequencer) invoke(ctx context.Context, stage domain.Stage, opts domain.RunOptions, framework domain.Framework) error {
	spanOpts := []ports.SpanOption{ports.WithAttribute("stage", stage.String())}
	if framework != "" {
		spanOpts = append(spanOpts, ports.WithAttribute("framework", framework.String()))
	}
	ctx, span := s.tracer.Start(ctx, spanName(stage, framework), spanOpts...)
	defer span.End()

	cmd, err := s.builder.Command(stage, opts, framework)
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.logger.Debug("$ " + cmd.String())

	if err := s.executor.Execute(ctx, cmd); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, domain.ErrStageFailed.Error()), "stage", stage.String())
	}
	return nil
}

// clean removes every artifact directory before restore starts.
func (s *Sequencer) clean(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, domain.StageClean.String(), ports.WithAttribute("stage", domain.StageClean.String()))
	defer span.End()

	for _, path := range s.builder.CleanPaths() {
		s.logger.Debug("removing " + path)
		if err := s.remover.RemoveDirectory(path); err != nil {
			span.RecordError(err)
			return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path)
		}
	}
	return nil
}

func (s *Sequencer) header(text string) {
	for _, line := range Header(text) {
		s.logger.Info(line)
	}
}

// Header returns the lines of a section header: a dash separator as wide as text,
// text, and the separator again.
func Header(text string) []string {
	separator := strings.Repeat("-", len(text))
	return []string{separator, text, separator}
}

// BuildHeader returns the section header text of the build stage.
func BuildHeader(frameworks []domain.Framework) string {
	names := make([]string, len(frameworks))
	for i, f := range frameworks {
		names[i] = f.String()
	}
	return fmt.Sprintf(buildHeader, strings.Join(names, " "))
}

// RunHeader returns the section header text of a run stage.
func RunHeader(framework domain.Framework) string {
	return fmt.Sprintf(runHeader, framework)
}

// Plan returns the names of the stages Run will attempt for opts, in order.
func Plan(opts domain.RunOptions) []string {
	plan := []string{domain.StageInfo.String()}
	if !opts.Incremental {
		plan = append(plan, domain.StageClean.String())
	}
	plan = append(plan, domain.StageRestore.String(), domain.StageBuild.String())
	for _, framework := range opts.Frameworks {
		plan = append(plan, spanName(domain.StageRun, framework))
	}
	return plan
}

func spanName(stage domain.Stage, framework domain.Framework) string {
	if framework == "" {
		return stage.String()
	}
	return stage.String() + " " + framework.String()
}
