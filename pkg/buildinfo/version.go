// Package buildinfo carries the version, commit, and build date stamped
// into release binaries:
//
//	go build -ldflags "-X github.com/syntree-dev/syntree/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/syntree-dev/syntree/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/syntree-dev/syntree/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds report "dev".
package buildinfo

import "fmt"

// Set via ldflags; the defaults identify a local development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information as a multi-line block.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template for cobra's --version output.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
