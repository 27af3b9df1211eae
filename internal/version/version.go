// Package version reports the build identity of timefield.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/timefield/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/timefield/internal/version.Commit=abc123"
//
// When unset they are filled from the VCS stamp in the build info, then
// fall back to "dev" and "unknown".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the short git commit hash
	Commit = ""
)

// Info is the resolved build identity.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Dirty     bool
}

func init() {
	info := Resolve(Version, Commit, readBuildInfo())
	Version, Commit = info.Version, info.Commit
}

func readBuildInfo() *debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return bi
}

// Resolve combines ldflags values with the build info. Explicit values win.
func Resolve(version, commit string, bi *debug.BuildInfo) Info {
	info := Info{Version: version, Commit: commit}
	if bi != nil {
		info.GoVersion = bi.GoVersion
		settings := make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
		info.Dirty = settings["vcs.modified"] == "true"

		if info.Commit == "" {
			if rev := settings["vcs.revision"]; rev != "" {
				info.Commit = shortHash(rev)
				if info.Dirty {
					info.Commit += "-dirty"
				}
			}
		}
		if info.Version == "" {
			if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
				info.Version = "dev-" + t.UTC().Format("20060102")
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String renders "<version> (commit: <commit>)".
func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s)", i.Version, i.Commit)
}

// Full returns the full version string including commit
func Full() string {
	return Info{Version: Version, Commit: Commit}.String()
}
