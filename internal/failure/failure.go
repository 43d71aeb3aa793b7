// Package failure turns the error that ends a run into an exit code and a diagnostic.
package failure

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/zerr"
)

// Exit codes returned by the process.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Kind classifies how a run ended.
type Kind int

const (
	KindSuccess Kind = iota
	KindAborted
	KindValidation
	KindProcess
	KindIO
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindAborted:
		return "aborted"
	case KindValidation:
		return "validation"
	case KindProcess:
		return "process"
	case KindIO:
		return "io"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Outcome is the classification of a run's final error.
type Outcome struct {
	Kind     Kind
	ExitCode int
	// Message is the diagnostic to log. Empty when nothing should be logged.
	Message string
}

// Classify maps err to an Outcome. A nil error is a success.
func Classify(err error) Outcome {
	if err == nil {
		return Outcome{Kind: KindSuccess, ExitCode: ExitOK}
	}

	if errors.Is(err, domain.ErrAborted) {
		return Outcome{Kind: KindAborted, ExitCode: ExitOK}
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return Outcome{Kind: KindValidation, ExitCode: ExitFailure, Message: validationErr.Error()}
	}

	var processErr *domain.ProcessError
	if errors.As(err, &processErr) {
		return Outcome{Kind: KindProcess, ExitCode: ExitFailure, Message: processErr.Error()}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return Outcome{Kind: KindIO, ExitCode: ExitFailure, Message: formatPathError(pathErr)}
	}

	return Outcome{Kind: KindUnexpected, ExitCode: ExitFailure, Message: "unexpected error"}
}

// Report logs the diagnostic for err and returns the exit code.
// Unexpected errors are followed by err itself, with its causes, metadata and
// a stack trace.
func Report(log ports.Logger, err error) int {
	outcome := Classify(err)
	if outcome.Message != "" {
		log.Error(zerr.New(outcome.Message))
	}
	if outcome.Kind == KindUnexpected {
		log.Error(withStack(err))
	}
	return outcome.ExitCode
}

type stackTracer interface {
	StackTrace() string
}

// withStack attaches a stack trace to err unless one of its causes carries one.
func withStack(err error) error {
	for current := err; current != nil; current = errors.Unwrap(current) {
		if st, ok := current.(stackTracer); ok && st.StackTrace() != "" {
			return err
		}
	}
	return zerr.WithStack(err)
}

func formatPathError(pathErr *fs.PathError) string {
	errno := 0
	var sysErr syscall.Errno
	if errors.As(pathErr.Err, &sysErr) {
		errno = int(sysErr)
	}
	return fmt.Sprintf("I/O error (%d): %s: %s", errno, pathErr.Err.Error(), pathErr.Path)
}
