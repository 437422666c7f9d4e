package version

import "fmt"

// Build metadata, overridden with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/gobend/internal/version.Version=0.4.0 \
//	  -X github.com/alexiusacademia/gobend/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const (
	Name   = "gobend"
	Author = "Alexius Academia"
	Year   = "2025"
)

// Info describes the running build
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

// Get returns the build metadata
func Get() Info {
	return Info{Name: Name, Version: Version, BuildTime: BuildTime, GitCommit: GitCommit}
}

func (i Info) String() string {
	return fmt.Sprintf("%s v%s (built %s, commit %s)", i.Name, i.Version, i.BuildTime, i.GitCommit)
}
