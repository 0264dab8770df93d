package declspec

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Set via ldflags during release builds by GoReleaser. Development
	// builds fall back to whatever the module's embedded build info
	// carries.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "unknown" && len(setting.Value) >= 7 {
				commit = setting.Value[:7]
			}
		case "vcs.time":
			if buildTime == "unknown" {
				buildTime = setting.Value
			}
		}
	}
}

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the short VCS revision the binary was built from, or
// 'unknown' when no revision was stamped
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 timestamp of the build, or 'unknown' when
// none was stamped
func BuildTime() string {
	return buildTime
}

// GoVersion returns the version of the Go runtime the binary was built with
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string to use
func UserAgent() string {
	return fmt.Sprintf("declspec/%s", version)
}

// BuildInfo returns a human readable summary of all build metadata
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		version, commit, buildTime, GoVersion())
}
