// Package app implements the application layer for microbench.
package app

import (
	"context"

	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/microbench/internal/engine/invocation"
	"go.trai.ch/microbench/internal/engine/sequencer"
	"go.trai.ch/zerr"
)

// RootSpanName names the span enclosing a whole run.
const RootSpanName = "microbench"

// App represents the main application logic.
type App struct {
	resolver  ports.RootResolver
	loader    ports.ConfigLoader
	validator ports.RuntimeValidator
	executor  ports.Executor
	remover   ports.Remover
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a new App instance.
func New(
	resolver ports.RootResolver,
	loader ports.ConfigLoader,
	validator ports.RuntimeValidator,
	executor ports.Executor,
	remover ports.Remover,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		resolver:  resolver,
		loader:    loader,
		validator: validator,
		executor:  executor,
		remover:   remover,
		logger:    log,
		tracer:    tracer,
	}
}

// Run locates the benchmarks project and drives the pipeline for opts.
func (a *App) Run(ctx context.Context, opts domain.RunOptions) error {
	a.logger.SetVerbose(opts.Verbose)

	// 1. Locate the repository and its layout
	root, err := a.resolver.Resolve()
	if err != nil {
		return err
	}

	layout, err := a.loader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Check the host before anything touches the filesystem
	if err := a.validator.Validate(layout.Tool); err != nil {
		return err
	}

	// 3. Run the stages
	ctx, span := a.tracer.Start(ctx, RootSpanName,
		ports.WithAttribute("configuration", string(opts.Configuration)),
		ports.WithAttribute("frameworks", opts.FrameworkNames()),
		ports.WithAttribute("incremental", opts.Incremental),
	)
	defer func() {
		_ = a.tracer.Shutdown(context.WithoutCancel(ctx))
	}()
	defer span.End()

	seq := sequencer.New(invocation.New(layout), a.executor, a.remover, a.logger, a.tracer)
	if err := seq.Run(ctx, opts); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

