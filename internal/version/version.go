// Package version holds the build information stamped in by the release
// pipeline.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/zen/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/zen/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/zen/internal/version.Date={{.Date}}
)

// Info is the one-line description printed by --version
func Info() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
