package version

import "fmt"

var (
	// Version is the release of berlin-clock and berlin-clock-server.
	// Release builds set it with -ldflags "-X .../internal/version.Version=...".
	Version = "0.1.0"
	// Commit is the short git SHA of the build, "none" for local builds.
	Commit = "none"
	// BuildTime is the UTC time the binaries were built at.
	BuildTime = "unknown"
)

// Short returns the release number, as logged by berlin-clock-server on startup.
func Short() string {
	return Version
}

// Full returns the release number with commit and build time, as printed by the version subcommand.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
