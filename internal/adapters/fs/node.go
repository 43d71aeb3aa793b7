package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/microbench/internal/core/ports"
)

// RemoverNodeID is the unique identifier for the remover Graft node.
const RemoverNodeID graft.ID = "adapter.fs.remover"

func init() {
	graft.Register(graft.Node[ports.Remover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Remover, error) {
			return NewRemover(), nil
		},
	})
}
