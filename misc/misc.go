// Package misc provides program identity helpers shared by logging,
// reporting and the command line surface.
package misc

import "runtime/debug"

const appName = "stylec"

// set by the linker in release builds, otherwise derived from build info
var (
	version = ""
	gitHash = ""
)

// GetAppName returns the program name used for log files and naming.
func GetAppName() string {
	return appName
}

// GetVersion returns the program version.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns the VCS revision the program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
