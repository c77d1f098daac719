// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information (Git commit, state) to the CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns the version string derived from embedded build info:
// the short VCS revision, with a "(dirty)" suffix when the tree was
// modified, or "dev" when no build info is available.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	revision, modified := vcsState(info)
	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}

// GetLongVersion returns the version string plus the Go toolchain that
// produced the binary, for the version subcommand.
func GetLongVersion() string {
	short := GetVersion()
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return short
	}
	return fmt.Sprintf("%s (built with %s)", short, info.GoVersion)
}

func vcsState(info *debug.BuildInfo) (revision string, modified bool) {
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	return revision, modified
}
