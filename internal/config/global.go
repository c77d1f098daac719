// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.dockfresh/config.yaml consistently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/dockfresh/internal/envutil"
	"github.com/poruru/dockfresh/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.dockfresh/config.yaml configuration.
// ExtraExcludeNames extends the built-in review exclusion list; entries
// can only add protection, never remove it.
type GlobalConfig struct {
	Version           int      `yaml:"version"`
	ExtraExcludeNames []string `yaml:"extra_exclude_names,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file.
// A DOCKFRESH_CONFIG override wins over the home directory default.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv("CONFIG")); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobal resolves, reads, validates, and parses the global config.
// A missing file yields the defaults. An invalid file is an error:
// silently ignoring it could drop exclusion entries the operator
// relies on.
func LoadGlobal() (GlobalConfig, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return GlobalConfig{}, err
	}
	cfg, err := LoadGlobalConfig(path)
	if os.IsNotExist(err) {
		return DefaultGlobalConfig(), nil
	}
	return cfg, err
}

// LoadGlobalConfig reads, validates, and parses a config file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	if err := validatePayload(payload); err != nil {
		return GlobalConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
