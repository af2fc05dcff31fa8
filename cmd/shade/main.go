package main

import (
	"runtime"

	"github.com/bnema/shade/internal/cli/cmd"
	"github.com/bnema/shade/internal/domain/build"
	"github.com/bnema/shade/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	defer logging.RecoverPanic(logging.NewFromEnv())

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
