// Package project locates and loads kwset.toml, the manifest a consuming
// package uses to pin where its generated artifacts live and which sets
// they cover.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded kwset.toml plus where it was found.
type Manifest struct {
	Path   string // absolute path of the manifest file
	Root   string // directory containing it
	Config Config
}

// Config mirrors the kwset.toml schema.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Generate GenerateConfig `toml:"generate"`
}

// PackageConfig names the consuming package.
type PackageConfig struct {
	Name string `toml:"name"`
}

// GenerateConfig pins the artifact directory, relative to the manifest,
// and the sets to emit into it.
type GenerateConfig struct {
	Dir  string   `toml:"dir"`
	Sets []string `toml:"sets"`
}

// FindManifest walks up from startDir to locate kwset.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "kwset.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the nearest manifest. ok reports whether one exists;
// running without a manifest is not an error, the caller falls back to its
// defaults.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig parses and validates a single manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("generate") {
		return Config{}, fmt.Errorf("%s: missing [generate]", path)
	}
	if !meta.IsDefined("generate", "dir") || strings.TrimSpace(cfg.Generate.Dir) == "" {
		return Config{}, fmt.Errorf("%s: missing [generate].dir", path)
	}
	if !meta.IsDefined("generate", "sets") || len(cfg.Generate.Sets) == 0 {
		return Config{}, fmt.Errorf("%s: missing [generate].sets", path)
	}
	return cfg, nil
}
