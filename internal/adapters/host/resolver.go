// Package host provides adapters that inspect the machine microbench runs on.
package host

import (
	"os"
	"path/filepath"

	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RootResolver = (*RootResolver)(nil)

// rootMarkers are the entries whose presence identifies the repository root.
var rootMarkers = []string{domain.ConfigFileName, ".git"}

// RootResolver finds the repository root by walking up from the working directory.
type RootResolver struct {
	getwd func() (string, error)
}

// NewRootResolver creates a RootResolver that starts at the process working directory.
func NewRootResolver() *RootResolver {
	return &RootResolver{getwd: os.Getwd}
}

// Resolve returns the nearest ancestor of the working directory containing a root marker.
// When no ancestor has one, the working directory itself is returned.
func (r *RootResolver) Resolve() (string, error) {
	cwd, err := r.getwd()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	cwd, err = filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	currentDir := cwd
	for {
		if hasMarker(currentDir) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return cwd, nil
}

func hasMarker(dir string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
