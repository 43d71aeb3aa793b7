// Package commands implements the CLI commands for microbench.
package commands

import (
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/microbench/internal/build"
	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/options"
)

// Application runs a validated benchmark pipeline.
type Application interface {
	Run(ctx context.Context, opts domain.RunOptions) error
}

// CLI represents the command line interface for microbench.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	raw     options.Raw
	goos    string
	started bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{
		app:  a,
		raw:  options.Defaults(),
		goos: runtime.GOOS,
	}

	rootCmd := &cobra.Command{
		Use:   "microbench",
		Short: "Restore, build and run the .NET micro benchmarks",
		Long: "Restores, builds and runs the .NET micro benchmarks for one or more target frameworks.\n" +
			"-f/--frameworks and --filter take one or more values: -f netcoreapp3.0 netcoreapp2.1.\n" +
			"Pass benchmark harness arguments with --bdn-arguments.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.started = true
			opts, err := options.Validate(c.raw, c.goos)
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&c.raw.Configuration, "configuration", "c", c.raw.Configuration,
		"Build configuration: Release or Debug")
	flags.StringSliceVarP(&c.raw.Frameworks, "frameworks", "f", nil,
		"Target frameworks to run the benchmarks for (one or more values)")
	flags.StringVar(&c.raw.Incremental, "incremental", c.raw.Incremental,
		"Keep packages, bin and obj folders from previous runs: yes or no")
	flags.BoolVar(&c.raw.EnableHardwareCounters, "enable-hardware-counters", false,
		"Collect branch mispredictions, cache misses and retired instructions")
	flags.StringVar(&c.raw.Category, "category", "", "Benchmark category to run: coreclr or corefx")
	flags.StringArrayVar(&c.raw.Filters, "filter", nil, "Glob patterns selecting benchmarks (one or more values)")
	flags.StringVar(&c.raw.CoreRun, "corerun", "", "Path to a CoreRun executable to run the benchmarks with")
	flags.StringVar(&c.raw.CLI, "cli", "", "Path to a dotnet CLI used by the benchmark harness")
	flags.StringVar(&c.raw.BDNArguments, "bdn-arguments", "", "Additional arguments passed to the benchmark harness")
	flags.BoolVarP(&c.raw.Verbose, "verbose", "v", false, "Show the executed commands and stage timings")

	// Defined after -v/--verbose so that --version gets no shorthand.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(flagError)

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newFrameworksCmd())

	return c
}

// flagError turns a flag parsing failure into a validation error.
func flagError(_ *cobra.Command, err error) error {
	return domain.NewValidationError("", err.Error(), err)
}

// Execute runs the root command with the given context.
// Errors cobra raises before the command runs, such as unknown commands or
// unexpected positional arguments, are reported as validation errors.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if err == nil || c.started {
		return err
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}
	return domain.NewValidationError("", err.Error(), err)
}

// SetArgs sets the arguments for the root command.
// Values following a list flag are folded into that flag, see ExpandListFlags.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(ExpandListFlags(args))
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetGOOS overrides the operating system frameworks are validated against. Used for testing.
func (c *CLI) SetGOOS(goos string) {
	c.goos = goos
}
