// Package shell provides a process executor for running the external build tool.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/zerr"
)

// ToolEnvironment is added to the inherited environment of every tool invocation.
var ToolEnvironment = []string{
	"DOTNET_CLI_TELEMETRY_OPTOUT=1",
	"DOTNET_MULTILEVEL_LOOKUP=0",
	"UseSharedCompilation=false",
}

// Process represents a running command.
type Process interface {
	Wait() error
}

type ptyProcess struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	ioDone <-chan struct{}
}

func (p *ptyProcess) Wait() error {
	err := p.cmd.Wait()

	// Drain whatever the child wrote before exiting.
	<-p.ioDone

	return err
}

type pipeProcess struct {
	cmd     *exec.Cmd
	writers []*logWriter
}

func (p *pipeProcess) Wait() error {
	err := p.cmd.Wait()
	for _, w := range p.writers {
		_ = w.Close()
	}
	return err
}

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
	env    []string
}

// NewExecutor creates a new Executor that streams process output to logger.
func NewExecutor(logger ports.Logger, env ...string) *Executor {
	return &Executor{
		logger: logger,
		env:    env,
	}
}

// Start launches the command in a PTY where supported and falls back to pipes elsewhere.
func (e *Executor) Start(ctx context.Context, command domain.Command) (Process, error) {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gosec // tool and arguments are validated
	cmd.Dir = command.Dir
	cmd.Env = append(os.Environ(), e.env...)

	stdoutLog := &logWriter{logger: e.logger, level: levelInfo}

	ptmx, err := pty.Start(cmd)
	if errors.Is(err, pty.ErrUnsupported) {
		return e.startWithPipes(cmd, stdoutLog)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProcessStartFailed.Error()), "command", command.String())
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = stdoutLog.Close() }()

		// The PTY merges stdout and stderr.
		_, _ = io.Copy(stdoutLog, ptmx)
	}()

	return &ptyProcess{
		cmd:    cmd,
		ptmx:   ptmx,
		ioDone: ioDone,
	}, nil
}

func (e *Executor) startWithPipes(cmd *exec.Cmd, stdoutLog *logWriter) (Process, error) {
	stderrLog := &logWriter{logger: e.logger, level: levelWarn}
	cmd.Stdout = stdoutLog
	cmd.Stderr = stderrLog

	if err := cmd.Start(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrProcessStartFailed.Error())
	}

	return &pipeProcess{cmd: cmd, writers: []*logWriter{stdoutLog, stderrLog}}, nil
}

// Execute runs the command and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, command domain.Command) error {
	proc, err := e.Start(ctx, command)
	if err != nil {
		return err
	}

	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &domain.ProcessError{
				Command:  command,
				ExitCode: exitErr.ExitCode(),
				Err:      err,
			}
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "command", command.String())
	}

	return nil
}

const (
	levelInfo = "info"
	levelWarn = "warn"
)

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == levelWarn {
		w.logger.Warn(msg)
		return
	}
	w.logger.Info(msg)
}
