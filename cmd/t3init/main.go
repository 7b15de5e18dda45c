package main

import (
	"github.com/tacogips/t3init/internal/cli"
)

// Set via ldflags by release builds that do not stamp internal/build directly.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

func main() {
	if version != "" {
		cli.Version = version
	}
	if gitCommit != "" {
		cli.GitCommit = gitCommit
	}
	if buildDate != "" {
		cli.BuildDate = buildDate
	}

	cli.Execute()
}
