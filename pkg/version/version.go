// Package version reports the finprod build version, set at link time with
// -ldflags "-X github.com/rshade/finprod/pkg/version.version=...".
package version

import (
	"fmt"
	"runtime/debug"
)

//nolint:gochecknoglobals // Set by the linker.
var (
	version   = ""
	commit    = ""
	buildDate = ""
)

const devVersion = "dev"

// GetVersion returns the build version, the module version recorded by
// "go install", or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetCommit returns the commit hash the binary was built from, if known.
func GetCommit() string {
	return commit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}

// String returns the version with commit and build date when available.
func String() string {
	s := GetVersion()
	if commit != "" {
		s += fmt.Sprintf(" (commit %s", commit)
		if buildDate != "" {
			s += ", built " + buildDate
		}
		s += ")"
	}
	return s
}
