package common

import (
	"fmt"
	"runtime"
)

// ClientName is the name the client reports to the daemon
const ClientName = "vrscrpc"

var (
	version   = "unknown"
	gitcommit = "unknown"
	buildtime = "unknown"
)

// VersionInfo holds information about the build of the client
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitcommit"`
	BuildTime string `json:"buildtime"`
	GoVersion string `json:"goversion"`
	OSArch    string `json:"os/arch"`
}

// GetVersionInfo returns VersionInfo of the running binary, values are set by -ldflags -X
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   version,
		GitCommit: gitcommit,
		BuildTime: buildtime,
		GoVersion: runtime.Version(),
		OSArch:    runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (vi VersionInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s %s)", ClientName, vi.Version, vi.GitCommit, vi.BuildTime, vi.GoVersion, vi.OSArch)
}

// UserAgent is sent in the HTTP requests to the daemon
func UserAgent() string {
	return ClientName + "/" + version
}
