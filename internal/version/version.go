// Package version carries build metadata stamped in with -ldflags, e.g.
//
//	-X github.com/IbtisamHemmo/Marketing-POC/internal/version.Version=1.2.0
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo is the JSON shape reported by /debug and `floractl version`.
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
}

// Info returns the stamped build metadata.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("floraflow %s (commit %s, built %s)", b.Version, b.GitCommit, b.BuildTime)
}

// UserAgent is sent with every CMS request.
func UserAgent() string {
	return "floraflow/" + Version
}
