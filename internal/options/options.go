// Package options turns raw command-line values into validated run options.
package options

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/zerr"
)

// Flag names as they appear in validation messages.
const (
	FlagConfiguration = "-c/--configuration"
	FlagFrameworks    = "-f/--frameworks"
	FlagIncremental   = "--incremental"
	FlagCategory      = "--category"
	FlagCoreRun       = "--corerun"
	FlagCLI           = "--cli"
	FlagBDNArguments  = "--bdn-arguments"
)

// Incremental flag values.
const (
	IncrementalYes = "yes"
	IncrementalNo  = "no"
)

// Raw holds option values exactly as they were given on the command line.
type Raw struct {
	Configuration          string
	Frameworks             []string
	Incremental            string
	EnableHardwareCounters bool
	Category               string
	Filters                []string
	CoreRun                string
	CLI                    string
	BDNArguments           string
	Verbose                bool
}

// Defaults returns the values used for flags that were not given.
func Defaults() Raw {
	return Raw{
		Configuration: string(domain.ConfigurationRelease),
		Incremental:   IncrementalYes,
	}
}

// Validate checks raw against the frameworks supported on goos and returns the run options.
// Every failure is a *domain.ValidationError.
func Validate(raw Raw, goos string) (domain.RunOptions, error) {
	var opts domain.RunOptions

	configuration, err := domain.ParseConfiguration(raw.Configuration)
	if err != nil {
		return opts, domain.NewValidationError(
			FlagConfiguration,
			fmt.Sprintf("unknown configuration: %s.", raw.Configuration),
			zerr.With(err, "configuration", raw.Configuration),
		)
	}
	opts.Configuration = configuration

	frameworks, err := validateFrameworks(raw.Frameworks, goos)
	if err != nil {
		return opts, err
	}
	opts.Frameworks = frameworks

	switch raw.Incremental {
	case IncrementalYes:
		opts.Incremental = true
	case IncrementalNo:
		opts.Incremental = false
	default:
		return opts, domain.NewValidationError(
			FlagIncremental,
			fmt.Sprintf("invalid choice: '%s' (choose from 'yes', 'no')", raw.Incremental),
			domain.ErrInvalidIncremental,
		)
	}

	if raw.Category != "" {
		category, err := domain.ParseCategory(raw.Category)
		if err != nil {
			return opts, domain.NewValidationError(
				FlagCategory,
				fmt.Sprintf("invalid choice: '%s' (choose from 'coreclr', 'corefx')", raw.Category),
				err,
			)
		}
		opts.Category = category
	}

	if opts.CoreRun, err = validateFilePath(FlagCoreRun, raw.CoreRun); err != nil {
		return opts, err
	}
	if opts.CLI, err = validateFilePath(FlagCLI, raw.CLI); err != nil {
		return opts, err
	}

	bdnArguments, err := SplitArguments(raw.BDNArguments)
	if err != nil {
		return opts, domain.NewValidationError(FlagBDNArguments, err.Error(), err)
	}
	opts.BDNArguments = bdnArguments

	if len(raw.Filters) > 0 {
		opts.Filters = append([]string(nil), raw.Filters...)
	}
	opts.EnableHardwareCounters = raw.EnableHardwareCounters
	opts.Verbose = raw.Verbose

	return opts, nil
}

// validateFrameworks reports all unsupported values at once and drops duplicates,
// keeping the order in which frameworks were first given.
func validateFrameworks(values []string, goos string) ([]domain.Framework, error) {
	if len(values) == 0 {
		return nil, domain.NewValidationError(
			FlagFrameworks,
			"the following arguments are required: "+FlagFrameworks,
			domain.ErrNoFrameworks,
		)
	}

	var invalid []string
	seen := make(map[string]struct{}, len(values))
	frameworks := make([]domain.Framework, 0, len(values))

	for _, value := range values {
		if !domain.IsSupportedFramework(goos, value) {
			invalid = append(invalid, value)
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		frameworks = append(frameworks, domain.Framework(value))
	}

	if len(invalid) > 0 {
		return nil, domain.NewValidationError(
			FlagFrameworks,
			"invalid choice(s): "+strings.Join(invalid, ", "),
			zerr.With(domain.ErrInvalidFrameworks, "frameworks", invalid),
		)
	}

	return frameworks, nil
}

// validateFilePath resolves value to an absolute path that must name an existing regular file.
// An empty value means the option was not given.
func validateFilePath(flag, value string) (string, error) {
	if value == "" {
		return "", nil
	}

	path, err := filepath.Abs(value)
	if err != nil {
		return "", domain.NewValidationError(flag, fmt.Sprintf("%s does not exist.", value), err)
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", domain.NewValidationError(
			flag,
			fmt.Sprintf("%s does not exist.", path),
			zerr.With(domain.ErrFileNotFound, "path", path),
		)
	}

	return path, nil
}

// SplitArguments tokenizes a pass-through argument string the way a single line of
// space-delimited CSV is read: fields are separated by single spaces and may be
// enclosed in double quotes. Only the first line is used, so a string starting
// with a line break yields no arguments.
func SplitArguments(s string) ([]string, error) {
	if strings.IndexAny(s, "\r\n") == 0 {
		return []string{}, nil
	}

	r := csv.NewReader(strings.NewReader(s))
	r.Comma = ' '
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	record, err := r.Read()
	if errors.Is(err, io.EOF) {
		return []string{}, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidArguments.Error())
	}

	return record, nil
}
