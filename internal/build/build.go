// Package build carries the version stamped into the t3init binary.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Overridden with -ldflags "-X github.com/tacogips/t3init/internal/build.<name>=...".
var (
	version string
	commit  = "unknown"
	date    = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"build_date"`
}

// Version returns the ldflags version, or the embedded VERSION file.
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// Current returns the build information of the running binary.
func Current() Info {
	return Info{
		Version: Version(),
		Commit:  commit,
		Date:    date,
	}
}
