package version

import (
	"runtime/debug"
	"testing"
)

func TestResolve(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.24.10",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-10-17T08:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name        string
		version     string
		commit      string
		bi          *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{"ldflags win", "v1.2.3", "abc123", bi, "v1.2.3", "abc123"},
		{"build info", "", "", bi, "dev-20261017", "0123456-dirty"},
		{"nothing", "", "", nil, "dev", "unknown"},
		{"short revision", "", "", &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}}, "dev", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.version, tt.commit, tt.bi)
			if got.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", got.Version, tt.wantVersion)
			}
			if got.Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", got.Commit, tt.wantCommit)
			}
		})
	}
}

func TestInfoString(t *testing.T) {
	got := Info{Version: "v0.1.0", Commit: "deadbee"}.String()
	if got != "v0.1.0 (commit: deadbee)" {
		t.Errorf("String() = %q", got)
	}
}
