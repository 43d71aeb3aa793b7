package main

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/microbench/internal/adapters/logger"
	"go.trai.ch/microbench/internal/adapters/telemetry"
	"go.trai.ch/microbench/internal/app"
	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/microbench/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	resolver  *mocks.MockRootResolver
	loader    *mocks.MockConfigLoader
	validator *mocks.MockRuntimeValidator
	executor  *mocks.MockExecutor
	remover   *mocks.MockRemover
}

func newProvider(t *testing.T, log ports.Logger) (ComponentProvider, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		resolver:  mocks.NewMockRootResolver(ctrl),
		loader:    mocks.NewMockConfigLoader(ctrl),
		validator: mocks.NewMockRuntimeValidator(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		remover:   mocks.NewMockRemover(ctrl),
	}

	application := app.New(
		deps.resolver,
		deps.loader,
		deps.validator,
		deps.executor,
		deps.remover,
		log,
		telemetry.NewNoOpTracer(),
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
	return provider, deps
}

func (d *testDeps) expectHost(root string) {
	d.resolver.EXPECT().Resolve().Return(root, nil)
	d.loader.EXPECT().Load(root).Return(domain.DefaultLayout(root), nil)
	d.validator.EXPECT().Validate("dotnet").Return(nil)
}

// TestRun_Success verifies that a full pipeline run exits with 0.
func TestRun_Success(t *testing.T) {
	provider, deps := newProvider(t, logger.New())
	deps.expectHost(filepath.FromSlash("/repo"))
	deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(4)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-f", "netcoreapp3.0"}, stderr, provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr.String(), "Restoring .NET micro benchmarks")
	assert.Contains(t, stderr.String(), "Running .NET micro benchmarks for 'netcoreapp3.0'")
}

// TestRun_Help verifies that requesting help is not an error.
func TestRun_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(0)
	provider, _ := newProvider(t, log)

	exitCode := run(context.Background(), []string{"--help"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ValidationError verifies that bad input is logged and nothing is executed.
func TestRun_ValidationError(t *testing.T) {
	provider, deps := newProvider(t, logger.New())
	deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-f", "netcoreapp9.9"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "argument -f/--frameworks: invalid choice(s): netcoreapp9.9")
}

// TestRun_ProcessFailure verifies that a failing stage stops the pipeline and exits with 1.
func TestRun_ProcessFailure(t *testing.T) {
	provider, deps := newProvider(t, logger.New())
	deps.expectHost(filepath.FromSlash("/repo"))

	gomock.InOrder(
		deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil),
		deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd domain.Command) error {
				return &domain.ProcessError{Command: cmd, ExitCode: 1, Err: errors.New("exit status 1")}
			},
		),
	)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-f", "netcoreapp3.0"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), `exited with status 1`)
	assert.NotContains(t, stderr.String(), "Building .NET micro benchmarks")
}

// TestRun_CleanFailure verifies that an I/O failure during clean is reported with its path.
func TestRun_CleanFailure(t *testing.T) {
	provider, deps := newProvider(t, logger.New())
	deps.expectHost(filepath.FromSlash("/repo"))
	deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)
	deps.remover.EXPECT().RemoveDirectory(gomock.Any()).Return(
		&fs.PathError{Op: "unlinkat", Path: filepath.FromSlash("/repo/packages"), Err: syscall.EACCES},
	)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"-f", "netcoreapp3.0", "--incremental", "no"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "I/O error")
	assert.Contains(t, stderr.String(), filepath.FromSlash("/repo/packages"))
}

// TestRun_Canceled verifies that a canceled context surfaces as a failure.
func TestRun_Canceled(t *testing.T) {
	provider, deps := newProvider(t, logger.New())
	deps.expectHost(filepath.FromSlash("/repo"))
	deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.Command) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"-f", "netcoreapp3.0"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
