// Package build describes the running binary.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String returns a one-line summary.
func (i Info) String() string {
	return fmt.Sprintf("shade %s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/shade"
}
