// Package version provides version information for showcase.
package version

import "runtime/debug"

// Version is the version of showcase. This can be overridden at build time using ldflags.
var Version = "development"

// Commit is the git commit hash. This can be overridden at build time using ldflags.
var Commit = "unknown"

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the full version string including the commit hash if available.
// A development build installed with go install reports its module version instead.
func String() string {
	v := Version
	if v == "development" {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if Commit != "unknown" {
		return v + "+" + Commit
	}
	return v
}
