package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the release string plus commit and build date.
// Untagged builds fall back to the module version recorded by go install.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", resolve(Version, readBuildInfo), Commit, Date)
}

var readBuildInfo = debug.ReadBuildInfo

func resolve(v string, read func() (*debug.BuildInfo, bool)) string {
	if v != "dev" {
		return v
	}
	info, ok := read()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return v
	}
	return info.Main.Version
}
