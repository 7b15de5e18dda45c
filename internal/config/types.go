package config

// Config represents the global t3init configuration.
type Config struct {
	// Extras configuration for the template source tree.
	Extras ExtrasConfig `json:"extras" yaml:"extras" envPrefix:"EXTRAS_"`
	// Defaults configuration for the feature selection used when flags are absent.
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults" envPrefix:"DEFAULT_"`
	// Files configuration for the copy step.
	Files FilesConfig `json:"files" yaml:"files" envPrefix:"FILES_"`
	// Output configuration for display and logging.
	Output OutputConfig `json:"output" yaml:"output" envPrefix:"OUTPUT_"`
}

// ExtrasConfig locates the template variants.
type ExtrasConfig struct {
	// Root is the directory holding the template variants.
	Root string `json:"root" yaml:"root" env:"ROOT"`
}

// DefaultsConfig holds the default feature selection.
type DefaultsConfig struct {
	// AppRouter selects the app router by default.
	AppRouter bool `json:"app_router" yaml:"app_router" env:"APP_ROUTER"`
	// Auth is the default auth provider name (none, next-auth, lucia).
	Auth string `json:"auth" yaml:"auth" env:"AUTH"`
	// DB is the default data layer name (none, prisma, drizzle).
	DB string `json:"db" yaml:"db" env:"DB"`
}

// FilesConfig represents copy settings.
type FilesConfig struct {
	// PreserveMode keeps template file permissions on copied files.
	PreserveMode bool `json:"preserve_mode" yaml:"preserve_mode" env:"PRESERVE_MODE"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// NoColor disables colored terminal output.
	NoColor bool `json:"no_color" yaml:"no_color" env:"NO_COLOR"`
	// Verbose enables verbose output.
	Verbose bool `json:"verbose" yaml:"verbose" env:"VERBOSE"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet" yaml:"quiet" env:"QUIET"`
}
