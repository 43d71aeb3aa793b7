package host

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/microbench/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the root resolver Graft node.
	ResolverNodeID graft.ID = "adapter.host.resolver"
	// RuntimeNodeID is the unique identifier for the runtime validator Graft node.
	RuntimeNodeID graft.ID = "adapter.host.runtime"
)

func init() {
	graft.Register(graft.Node[ports.RootResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RootResolver, error) {
			return NewRootResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.RuntimeValidator]{
		ID:        RuntimeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuntimeValidator, error) {
			return NewRuntimeValidator(), nil
		},
	})
}
