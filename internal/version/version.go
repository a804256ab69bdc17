package version

// Version is the current version of the indexes CLI.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-indexes/internal/version.Version=1.2.3"
var Version = "main"

// GetVersion returns the current version of the CLI.
func GetVersion() string {
	return Version
}
