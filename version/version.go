package version

import "fmt"

// set by goreleaser via ldflags
//
//nolint:gochecknoglobals // ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

//nolint:gochecknoglobals // ldflags
var FullVersion = fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
