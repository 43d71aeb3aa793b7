// Package fs provides filesystem adapters.
package fs

import (
	"os"

	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Remover = (*Remover)(nil)

// Remover implements ports.Remover using os.RemoveAll.
type Remover struct {
	removeAll func(string) error
}

// NewRemover creates a new Remover.
func NewRemover() *Remover {
	return &Remover{removeAll: os.RemoveAll}
}

// RemoveDirectory deletes path recursively. A missing path is not an error.
func (r *Remover) RemoveDirectory(path string) error {
	if err := r.removeAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", path)
	}
	return nil
}
