// Package config loads the optional stagehand.yaml project configuration.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"

	"github.com/go-stagehand/stagehand/pkg/errors"
)

// Config represents the optional stagehand.yaml configuration.
type Config struct {
	App    AppConfig `yaml:"app"`
	Sheets []string  `yaml:"sheets"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	// Sheets holds cue sheet paths or globs, relative to Root.
	Sheets []string
}

// LoadOptional reads stagehand.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "stagehand.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &errors.Error{
			Op:   "config.LoadOptional",
			Kind: errors.KindConfig,
			Err:  err,
			Path: path,
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.Error{
			Op:   "config.LoadOptional",
			Kind: errors.KindConfig,
			Err:  err,
			Path: path,
		}
	}

	return &cfg, nil
}

// Resolve loads stagehand.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Sheets:     cfg.Sheets,
	}, nil
}

// SheetFiles expands the configured sheet globs relative to the project root.
func (r *Resolved) SheetFiles() ([]string, error) {
	var files []string
	for _, pattern := range r.Sheets {
		matches, err := filepath.Glob(filepath.Join(r.Root, pattern))
		if err != nil {
			return nil, &errors.Error{
				Op:   "config.SheetFiles",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("bad sheet glob %q: %w", pattern, err),
				Path: r.Root,
			}
		}
		files = append(files, matches...)
	}
	return files, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &errors.Error{
				Op:   "config.FindProjectRoot",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("not in a Go module (no go.mod found)"),
			}
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	path := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &errors.Error{
			Op:   "config.Resolve",
			Kind: errors.KindConfig,
			Err:  err,
			Path: path,
		}
	}
	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return "", &errors.Error{
			Op:   "config.Resolve",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("could not determine module path"),
			Path: path,
		}
	}
	return modPath, nil
}

func defaultAppName(modulePath, dir string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) > 0 && parts[len(parts)-1] != "" {
		return parts[len(parts)-1]
	}
	base := filepath.Base(dir)
	if base == "" || base == "." {
		return "stagehand_app"
	}
	return base
}
