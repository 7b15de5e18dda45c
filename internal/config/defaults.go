package config

import (
	"os"
	"path/filepath"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "T3INIT_"

// DefaultExtrasRoot is the extras directory used when nothing else is configured.
const DefaultExtrasRoot = "template/extras"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Extras: ExtrasConfig{
			Root: DefaultExtrasRoot,
		},
		Defaults: DefaultsConfig{
			AppRouter: false,
			Auth:      "none",
			DB:        "none",
		},
		Files: FilesConfig{
			PreserveMode: false,
		},
		Output: OutputConfig{
			NoColor: false,
			Verbose: false,
			Quiet:   false,
		},
	}
}

// DefaultConfigPaths returns the candidate configuration file paths in lookup order.
func DefaultConfigPaths() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(homeDir, ".config", "t3init")
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.json"),
	}
}

// FindConfigFile returns the first existing default configuration file, or "".
func FindConfigFile() string {
	for _, p := range DefaultConfigPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
