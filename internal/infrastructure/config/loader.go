package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/devzap/assets"
	"github.com/doeshing/devzap/internal/domain"
	"github.com/doeshing/devzap/internal/pkg/filesystem"
	"github.com/doeshing/devzap/internal/ports"
)

// FileLoader loads YAML configuration from ~/.devzap/config.yaml
// (overridable via DEVZAP_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path defers resolution to the
// environment and the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. The default file is written on first
// run so setup has something to amend.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := l.writeTo(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Save writes the given config back to disk.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	return l.writeTo(path, cfg)
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Reset overwrites the config with defaults and returns the default snapshot.
func (l *FileLoader) Reset() (domain.Config, error) {
	cfg := defaultConfig()
	if err := l.Save(cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("DEVZAP_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".devzap", "config.yaml")
}

func (l *FileLoader) writeTo(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	// The file may hold the API key, so keep it owner-only.
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func defaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		// Minimal fallback if the embedded YAML is ever corrupted.
		return domain.Config{
			ConfigFormatVersion: "1",
			Model:               domain.DefaultModel,
			Preferences: domain.Preferences{
				TimeoutSeconds: 60,
				MaxTokens:      domain.DefaultMaxTokens,
			},
			Monitoring: domain.MonitoringSettings{TailLines: domain.DefaultTailLines},
			Security:   domain.SecuritySettings{Enabled: true},
		}
	}
	if cfg.Security.RulesFile == "~/.devzap/guardrail.yaml" {
		cfg.Security.RulesFile = filepath.Join(filesystem.UserHomeDir(), ".devzap", "guardrail.yaml")
	}
	return cfg
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Model == "" {
		cfg.Model = domain.DefaultModel
	}
	if cfg.Preferences.TimeoutSeconds == 0 {
		cfg.Preferences.TimeoutSeconds = 60
	}
	if cfg.Preferences.MaxTokens == 0 {
		cfg.Preferences.MaxTokens = domain.DefaultMaxTokens
	}
	if cfg.Monitoring.TailLines == 0 {
		cfg.Monitoring.TailLines = domain.DefaultTailLines
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

// DefaultConfig exposes the bootstrap configuration template.
func DefaultConfig() domain.Config {
	return defaultConfig()
}

var _ ports.ConfigStore = (*FileLoader)(nil)
