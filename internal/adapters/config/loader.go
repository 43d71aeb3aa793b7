// Package config provides the configuration loader for microbench.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/microbench/internal/core/domain"
	"go.trai.ch/microbench/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file at the repository root.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the layout for the repository rooted at root.
// When no config file exists the default layout is returned.
func (l *Loader) Load(root string) (domain.Layout, error) {
	configPath := filepath.Join(root, domain.ConfigFileName)

	var cfg Configfile
	err := readAndUnmarshalYAML(configPath, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Debug(domain.ConfigFileName + " not found, using default layout")
		return domain.DefaultLayout(root), nil
	}
	if err != nil {
		return domain.Layout{}, zerr.With(err, "path", configPath)
	}

	if cfg.Version != "" && cfg.Version != SupportedVersion {
		err := zerr.With(domain.ErrUnsupportedConfigVersion, "version", cfg.Version)
		return domain.Layout{}, zerr.With(err, "path", configPath)
	}

	return resolveLayout(root, &cfg), nil
}

func resolveLayout(root string, cfg *Configfile) domain.Layout {
	layout := domain.DefaultLayout(root)

	if cfg.Project.Dir != "" {
		layout.ProjectDir = resolvePath(root, cfg.Project.Dir)
	}
	file := domain.DefaultProjectFile
	if cfg.Project.File != "" {
		file = cfg.Project.File
	}
	layout.ProjectFile = resolvePath(layout.ProjectDir, file)

	if cfg.Packages != "" {
		layout.PackagesDir = resolvePath(root, cfg.Packages)
	}
	if cfg.Tool != "" {
		layout.Tool = cfg.Tool
	}
	return layout
}

func resolvePath(base, configured string) string {
	configured = filepath.FromSlash(configured)
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

// readAndUnmarshalYAML reads a YAML file and strictly decodes it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is derived from the resolved repository root
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
