package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set via ldflags:
// go build -ldflags "-X github.com/rbradwell/language-learning/internal/app.Version=1.0.0"
// Commit and BuildTime fall back to the VCS stamp embedded by the go tool.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build info for startup logs and the health endpoint.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = vcsStamp(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	for _, s := range settings {
		switch {
		case s.Key == "vcs.revision" && commit == "unknown":
			commit = s.Value
		case s.Key == "vcs.time" && built == "unknown":
			built = s.Value
		}
	}
	return commit, built
}
