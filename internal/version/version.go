// Package version holds build metadata stamped via ldflags.
package version

// Stamped at release build time via
// -ldflags "-X .../internal/version.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
