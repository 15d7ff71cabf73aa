// Package config provides the configuration loader for macsdk.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/macsdk/internal/core/domain"
	"go.trai.ch/macsdk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks upward from cwd looking for a macsdk.yaml and returns its
// contents. No file anywhere on the path yields the zero Config.
func (l *Loader) Load(cwd string) (ports.Config, error) {
	path, found := findConfigFile(cwd)
	if !found {
		return ports.Config{}, nil
	}

	l.Logger.Debug("loading configuration from " + path)

	// #nosec G304 -- path is discovered by walking up from cwd
	raw, err := os.ReadFile(path)
	if err != nil {
		return ports.Config{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	if parseErr := yaml.Unmarshal(raw, &file); parseErr != nil {
		return ports.Config{}, zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	cfg := ports.Config{
		DeveloperDir: file.DeveloperDir,
		SDKVersion:   file.SDKVersion,
		LogFormat:    file.LogFormat,
	}
	if err := validate(cfg); err != nil {
		return ports.Config{}, zerr.With(err, "path", path)
	}

	return cfg, nil
}

func findConfigFile(cwd string) (string, bool) {
	currentDir := cwd

	for {
		path := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", false
}

func validate(cfg ports.Config) error {
	if cfg.SDKVersion != "" {
		if domain.ParseVersion(cfg.SDKVersion).Major() == 0 {
			return zerr.With(domain.ErrConfigParseFailed, "sdkVersion", cfg.SDKVersion)
		}
	}

	switch cfg.LogFormat {
	case "", "pretty", "json":
	default:
		return zerr.With(domain.ErrConfigParseFailed, "logFormat", cfg.LogFormat)
	}

	return nil
}

var _ ports.ConfigLoader = (*Loader)(nil)
