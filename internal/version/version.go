// Package version holds build metadata injected at link time.
package version

// Overridden with -ldflags "-X github.com/hopinc/hop-cli/internal/version.BuildVersion=..."
var (
	BuildVersion = "dev"
	BuildCommit  = "none"
	BuildDate    = "unknown"

	// SentryDSN is empty for local builds, which disables error reporting.
	SentryDSN = ""
)

// IsDev reports whether the binary was built without a release version.
func IsDev() bool {
	return BuildVersion == "" || BuildVersion == "dev"
}
