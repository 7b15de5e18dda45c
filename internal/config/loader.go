package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/tacogips/t3init/internal/selection"
	"gopkg.in/yaml.v3"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newConfigError(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, newConfigError(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, newConfigError(ConfigInvalid, path, "invalid YAML syntax", err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, newConfigError(ConfigInvalid, path, "invalid JSON syntax", err)
		}
	}

	// Merge with defaults for any missing fields
	mergeConfig(&cfg, DefaultConfig())

	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
// An empty path also yields the defaults.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := l.Load(path)
	if err != nil {
		if IsNotFound(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if strings.TrimSpace(config.Extras.Root) == "" {
		return newFieldError("extras.root", "extras root cannot be empty", nil)
	}
	if _, err := selection.ParseAuthProvider(config.Defaults.Auth); err != nil {
		return newFieldError("defaults.auth", "invalid auth provider", err)
	}
	if _, err := selection.ParseDataLayer(config.Defaults.DB); err != nil {
		return newFieldError("defaults.db", "invalid data layer", err)
	}
	if config.Output.Quiet && config.Output.Verbose {
		return newFieldError("output", "quiet and verbose are mutually exclusive", nil)
	}
	return nil
}

// Validate validates the global configuration.
func Validate(config *Config) error {
	return NewLoader().Validate(config)
}

// ApplyEnv overlays T3INIT_* environment variables onto cfg. Unset variables
// leave the corresponding fields untouched.
func ApplyEnv(cfg *Config) error {
	return ApplyEnvFrom(cfg, nil)
}

// ApplyEnvFrom is ApplyEnv reading from the given map instead of the process
// environment. A nil map reads the process environment.
func ApplyEnvFrom(cfg *Config, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return newConfigError(ConfigEnvInvalid, "environment", "failed to parse environment", err)
	}
	return nil
}

// Selection converts the configured defaults into a feature selection.
func (c *Config) Selection() (selection.Selection, error) {
	auth, err := selection.ParseAuthProvider(c.Defaults.Auth)
	if err != nil {
		return selection.Selection{}, err
	}
	data, err := selection.ParseDataLayer(c.Defaults.DB)
	if err != nil {
		return selection.Selection{}, err
	}
	return selection.Selection{
		UseAppRouter: c.Defaults.AppRouter,
		Auth:         auth,
		Data:         data,
	}, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// mergeConfig merges missing fields from defaults into cfg.
func mergeConfig(cfg, defaults *Config) {
	if cfg.Extras.Root == "" {
		cfg.Extras.Root = defaults.Extras.Root
	}
	if cfg.Defaults.Auth == "" {
		cfg.Defaults.Auth = defaults.Defaults.Auth
	}
	if cfg.Defaults.DB == "" {
		cfg.Defaults.DB = defaults.Defaults.DB
	}
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	// Make absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
