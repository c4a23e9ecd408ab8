package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata, injected with
// -ldflags "-X github.com/heartmarshall/adaptive-engine/internal/app.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion describes the running binary for startup logs and /health.
// When Commit was not injected the VCS revision recorded by the Go toolchain
// is used instead.
func BuildVersion() string {
	return formatVersion(Version, commit(), BuildTime)
}

func formatVersion(version, commit, built string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func commit() string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return Commit
}
