// Package version exposes the build metadata stamped into the Screen
// Measure binary.
package version

import "fmt"

// Overridden at build time, e.g.
//
//	go build -ldflags "-X screen-measure/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// Version is the semantic version of this release.
	Version = "0.1.0"

	// BuildTime is the UTC time the binary was built.
	BuildTime = "unknown"

	// GitCommit is the git commit the binary was built from.
	GitCommit = "unknown"
)

// String formats the metadata for the About dialog and the startup log.
func String() string {
	return fmt.Sprintf("v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
}
