package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/microbench/cmd/microbench/commands"
	"go.trai.ch/microbench/internal/build"
	"go.trai.ch/microbench/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts domain.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts domain.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func newCLI(t *testing.T, a commands.Application, args ...string) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	cli := commands.New(a)
	cli.SetGOOS("linux")
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	return cli, buf
}

func TestCommands_Root(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured domain.RunOptions
		called := false
		mock := &mockApp{
			runFunc: func(_ context.Context, opts domain.RunOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli, _ := newCLI(t, mock,
			"-f", "netcoreapp3.0,netcoreapp2.1",
			"--frameworks", "netcoreapp3.0",
			"-c", "debug",
			"--incremental", "no",
			"--enable-hardware-counters",
			"--category", "CoreCLR",
			"--filter", "*Span*",
			"--filter", "System.Memory.*",
			"--bdn-arguments", "--iterationCount 5",
			"-v",
		)

		require.NoError(t, cli.Execute(context.Background()))
		require.True(t, called)
		assert.Equal(t, domain.ConfigurationDebug, captured.Configuration)
		assert.Equal(t, []domain.Framework{"netcoreapp3.0", "netcoreapp2.1"}, captured.Frameworks)
		assert.False(t, captured.Incremental)
		assert.True(t, captured.EnableHardwareCounters)
		assert.Equal(t, domain.CategoryCoreCLR, captured.Category)
		assert.Equal(t, []string{"*Span*", "System.Memory.*"}, captured.Filters)
		assert.Equal(t, []string{"--iterationCount", "5"}, captured.BDNArguments)
		assert.True(t, captured.Verbose)
	})

	t.Run("uses defaults", func(t *testing.T) {
		var captured domain.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts domain.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli, _ := newCLI(t, mock, "-f", "netcoreapp2.0")

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.ConfigurationRelease, captured.Configuration)
		assert.True(t, captured.Incremental)
		assert.Empty(t, captured.Category)
		assert.Empty(t, captured.BDNArguments)
		assert.False(t, captured.Verbose)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ domain.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli, _ := newCLI(t, mock, "-f", "netcoreapp3.0")

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")

		var validationErr *domain.ValidationError
		assert.False(t, errors.As(err, &validationErr))
	})

	t.Run("accepts several values per list flag", func(t *testing.T) {
		var captured domain.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts domain.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli, _ := newCLI(t, mock,
			"-f", "netcoreapp3.0", "netcoreapp2.1",
			"--filter", "*Sort*", "*Hash*",
			"-c", "Debug",
		)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []domain.Framework{"netcoreapp3.0", "netcoreapp2.1"}, captured.Frameworks)
		assert.Equal(t, []string{"*Sort*", "*Hash*"}, captured.Filters)
		assert.Equal(t, domain.ConfigurationDebug, captured.Configuration)
	})

	t.Run("short verbose flag", func(t *testing.T) {
		var captured domain.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts domain.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli, _ := newCLI(t, mock, "-f", "netcoreapp3.0", "-v")

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Verbose)
	})

	t.Run("version flag", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ domain.RunOptions) error {
				panic("should not be called")
			},
		}

		cli, buf := newCLI(t, mock, "--version")

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "version "+build.Version)
	})

	t.Run("shows help without running", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ domain.RunOptions) error {
				panic("should not be called")
			},
		}

		cli, buf := newCLI(t, mock, "--help")

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
		assert.Contains(t, buf.String(), "--bdn-arguments")
	})
}

func TestCommands_RootValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "missing frameworks",
			args:    []string{"-c", "Release"},
			wantMsg: "argument -f/--frameworks: the following arguments are required: -f/--frameworks",
		},
		{
			name:    "invalid frameworks are reported together",
			args:    []string{"-f", "bogus1", "-f", "netcoreapp3.0", "-f", "bogus2"},
			wantMsg: "argument -f/--frameworks: invalid choice(s): bogus1, bogus2",
		},
		{
			name:    "windows only framework",
			args:    []string{"-f", "net461"},
			wantMsg: "argument -f/--frameworks: invalid choice(s): net461",
		},
		{
			name:    "unknown configuration",
			args:    []string{"-f", "netcoreapp3.0", "-c", "Checked"},
			wantMsg: "argument -c/--configuration: unknown configuration: Checked.",
		},
		{
			name:    "missing corerun",
			args:    []string{"-f", "netcoreapp3.0", "--corerun", "/definitely/missing/corerun"},
			wantMsg: "argument --corerun: /definitely/missing/corerun does not exist.",
		},
		{
			name:    "unknown flag",
			args:    []string{"-f", "netcoreapp3.0", "--no-such-flag"},
			wantMsg: "unknown flag: --no-such-flag",
		},
		{
			name:    "positional argument",
			args:    []string{"extra", "-f", "netcoreapp3.0"},
			wantMsg: "extra",
		},
		{
			name:    "bare value after list flag is a framework",
			args:    []string{"-f", "netcoreapp3.0", "extra"},
			wantMsg: "argument -f/--frameworks: invalid choice(s): extra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{
				runFunc: func(_ context.Context, _ domain.RunOptions) error {
					panic("should not be called")
				},
			}
			cli, _ := newCLI(t, mock, tt.args...)

			err := cli.Execute(context.Background())
			require.Error(t, err)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Error(), tt.wantMsg)
		})
	}
}

func TestNew_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { commands.New(&mockApp{}) })
}

func TestExpandListFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "single values untouched",
			args: []string{"-f", "netcoreapp3.0", "-c", "Debug"},
			want: []string{"-f", "netcoreapp3.0", "-c", "Debug"},
		},
		{
			name: "several framework values",
			args: []string{"-f", "netcoreapp3.0", "netcoreapp2.1", "-v"},
			want: []string{"-f", "netcoreapp3.0", "-f", "netcoreapp2.1", "-v"},
		},
		{
			name: "long forms",
			args: []string{"--frameworks", "a", "b", "--filter", "x", "y"},
			want: []string{"--frameworks", "a", "--frameworks", "b", "--filter", "x", "--filter", "y"},
		},
		{
			name: "inline first value",
			args: []string{"--filter=x", "y", "-fa", "b"},
			want: []string{"--filter=x", "--filter", "y", "-fa", "-f", "b"},
		},
		{
			name: "other flag ends the list",
			args: []string{"-f", "a", "--category", "coreclr", "extra"},
			want: []string{"-f", "a", "--category", "coreclr", "extra"},
		},
		{
			name: "double dash stops expansion",
			args: []string{"-f", "a", "--", "b"},
			want: []string{"-f", "a", "--", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commands.ExpandListFlags(tt.args))
		})
	}
}

func TestCommands_WindowsFramework(t *testing.T) {
	var captured domain.RunOptions
	mock := &mockApp{
		runFunc: func(_ context.Context, opts domain.RunOptions) error {
			captured = opts
			return nil
		},
	}

	cli, _ := newCLI(t, mock, "-f", "net461")
	cli.SetGOOS("windows")

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []domain.Framework{domain.WindowsOnlyFramework}, captured.Frameworks)
}

func TestCommands_Version(t *testing.T) {
	cli, buf := newCLI(t, &mockApp{}, "version")

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "microbench version "+build.Version)
}

func TestCommands_Frameworks(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("linux", func(t *testing.T) {
		cli, buf := newCLI(t, &mockApp{}, "frameworks")

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t,
			"netcoreapp3.0   master\n"+
				"netcoreapp2.2   2.2\n"+
				"netcoreapp2.1   2.1\n"+
				"netcoreapp2.0   2.0\n",
			buf.String())
	})

	t.Run("windows", func(t *testing.T) {
		cli, buf := newCLI(t, &mockApp{}, "frameworks")
		cli.SetGOOS("windows")

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "net461          -\n")
	})
}
