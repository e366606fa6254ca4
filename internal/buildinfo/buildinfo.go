// Package buildinfo holds version information injected at build time via
// ldflags.
package buildinfo

var (
	Version    = "dev"
	CommitHash = "unknown"
)

// Short returns the version, with the commit appended when one was
// recorded.
func Short() string {
	if CommitHash == "unknown" || CommitHash == "" {
		return Version
	}
	return Version + " (" + CommitHash + ")"
}
