// Package version holds build metadata set at link time, for example
//
//	go build -ldflags "-X onboarding/internal/version.Version=v1.4.0"
package version

import "runtime/debug"

const unknown = "unknown"

var (
	Version   = "dev"
	BuildTime = unknown
	GitCommit = unknown
)

type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

func Get() string {
	return Version
}

// Info reports the linker-stamped values. Commit and time that were not
// stamped fall back to the VCS settings embedded by the Go toolchain.
func Info() BuildInfo {
	info := BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit}
	fillFromVCS(&info, debug.ReadBuildInfo)
	return info
}

func fillFromVCS(info *BuildInfo, read func() (*debug.BuildInfo, bool)) {
	if info.GitCommit != unknown && info.BuildTime != unknown {
		return
	}
	embedded, ok := read()
	if !ok {
		return
	}
	for _, setting := range embedded.Settings {
		switch {
		case setting.Key == "vcs.revision" && info.GitCommit == unknown:
			info.GitCommit = setting.Value
		case setting.Key == "vcs.time" && info.BuildTime == unknown:
			info.BuildTime = setting.Value
		}
	}
}
