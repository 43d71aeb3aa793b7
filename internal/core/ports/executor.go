// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/microbench/internal/core/domain"
)

// Executor defines the interface for invoking the external build tool.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and blocks until it exits.
	//
	// It returns a *domain.ProcessError if the process exits with a non-zero status.
	Execute(ctx context.Context, cmd domain.Command) error
}
